// internal/app/snapshot.go
package app

import (
	"image/color"
	"maps"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/pkg/tunnelmap"
)

type AntView struct {
	X, Y             float64
	TargetX, TargetY float64
	Radius           float64
	Color            color.RGBA
	HealthRatio      float64
	Rarity           defs.Rarity
	Specialty        defs.Specialty
	Tunnel           component.TunnelPhase
	Invincible       bool
	Invisible        bool
	Shiny            bool
}

type EnemyView struct {
	X, Y        float64
	Radius      float64
	Color       color.RGBA
	HealthRatio float64
	Rarity      defs.Rarity
	Boss        bool
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
	// Alpha fades linearly with remaining life.
	Alpha float64
}

// Snapshot is a read-only copy of everything the front-end draws. It shares
// no memory with the live world.
type Snapshot struct {
	Tick             uint64
	Paused           bool
	Resources        component.Resources
	Upgrades         component.Upgrades
	UpgradeCosts     map[defs.UpgradeKind]int
	Level            int
	EnemiesKilled    int
	TotalCoinsEarned int
	GameTime         float64
	Achievements     map[string]bool
	MaxAnts          int
	TunnelsDug       int
	MaxTunnels       int

	GridWidth, GridHeight int
	CellSize              float64
	Grid                  []tunnelmap.Cell

	Ants      []AntView
	Enemies   []EnemyView
	Particles []ParticleView
	Messages  []string
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		Tick:             g.ticks,
		Paused:           g.paused,
		Resources:        w.Resources,
		Upgrades:         w.Upgrades.Clone(),
		UpgradeCosts:     make(map[defs.UpgradeKind]int, len(defs.UpgradeKinds)),
		Level:            w.Progress.Level,
		EnemiesKilled:    w.Progress.EnemiesKilled,
		TotalCoinsEarned: w.Progress.TotalCoinsEarned,
		GameTime:         w.Progress.GameTime,
		Achievements:     maps.Clone(w.Progress.Achievements),
		MaxAnts:          w.MaxAnts(),
		TunnelsDug:       w.TunnelsDug,
		MaxTunnels:       config.MaxTunnels,
		GridWidth:        w.Map.Width,
		GridHeight:       w.Map.Height,
		CellSize:         w.Map.CellSize,
		Grid:             w.Map.Cells(),
		Ants:             make([]AntView, 0, w.Colony.Len()),
		Enemies:          make([]EnemyView, 0, len(w.Enemies)),
		Particles:        make([]ParticleView, 0, len(w.Particles)),
		Messages:         g.messages.Messages(),
	}
	for _, k := range defs.UpgradeKinds {
		s.UpgradeCosts[k] = g.UpgradeSystem.Cost(k)
	}
	for _, a := range w.Colony.Ants() {
		s.Ants = append(s.Ants, AntView{
			X: a.Pos.X, Y: a.Pos.Y,
			TargetX: a.Target.X, TargetY: a.Target.Y,
			Radius:      defs.AntDef(a.Rarity).Visuals.Radius,
			Color:       a.Color,
			HealthRatio: a.HealthRatio(),
			Rarity:      a.Rarity,
			Specialty:   a.Specialty,
			Tunnel:      a.Tunnel.Phase,
			Invincible:  a.Invincible,
			Invisible:   a.Invisible,
			Shiny:       a.Shiny,
		})
	}
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			X: e.Pos.X, Y: e.Pos.Y,
			Radius:      e.Radius,
			Color:       e.Color,
			HealthRatio: e.HealthRatio(),
			Rarity:      e.Rarity,
			Boss:        e.IsBoss(),
		})
	}
	for _, p := range w.Particles {
		s.Particles = append(s.Particles, ParticleView{
			X: p.Pos.X, Y: p.Pos.Y,
			Size:  p.Size,
			Color: p.Color,
			Alpha: float64(p.Life) / config.ParticleLife,
		})
	}
	return s
}
