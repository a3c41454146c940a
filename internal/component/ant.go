// internal/component/ant.go
package component

import (
	"image/color"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/types"
)

// TunnelPhase is the state of the tunnel buff cycle.
type TunnelPhase int

const (
	TunnelIdle TunnelPhase = iota
	TunnelStopped
	TunnelBuffed
)

func (p TunnelPhase) String() string {
	switch p {
	case TunnelStopped:
		return "stopped"
	case TunnelBuffed:
		return "buffed"
	default:
		return "idle"
	}
}

// TunnelState carries the phase and the ticks left in it.
type TunnelState struct {
	Phase     TunnelPhase
	Remaining int
}

// Ant is one member of the colony.
type Ant struct {
	ID     types.EntityID
	Pos    Position
	Target Position
	// TargetEnemy is followed while it is alive.
	TargetEnemy types.EntityID

	Health      float64
	MaxHealth   float64
	BaseSpeed   float64
	Speed       float64
	BaseDamage  float64
	DamageScale float64
	Damage      float64

	Rarity    defs.Rarity
	Specialty defs.Specialty
	Color     color.RGBA

	Invincible bool
	Invisible  bool
	Shiny      bool

	Tunnel TunnelState
}

// NewAnt builds an unscaled ant of rarity r standing at (x, y).
func NewAnt(id types.EntityID, r defs.Rarity, x, y float64) *Ant {
	def := defs.AntDef(r)
	return &Ant{
		ID:          id,
		Pos:         Position{X: x, Y: y},
		Target:      Position{X: x, Y: y},
		Health:      def.Health,
		MaxHealth:   def.Health,
		BaseSpeed:   def.Speed,
		Speed:       def.Speed,
		BaseDamage:  config.AntBaseDamage,
		DamageScale: 1,
		Damage:      config.AntBaseDamage,
		Rarity:      def.Rarity,
		Specialty:   def.Specialty,
		Color:       def.Visuals.Color,
	}
}

// Alive reports whether the ant still has health.
func (a *Ant) Alive() bool {
	return a.Health > 0
}

// HealthRatio is health/maxHealth in [0,1].
func (a *Ant) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	r := a.Health / a.MaxHealth
	if r < 0 {
		return 0
	}
	return r
}

// Buffed reports whether the tunnel damage buff is active.
func (a *Ant) Buffed() bool {
	return a.Tunnel.Phase == TunnelBuffed
}

// NormalDamage is base damage times the upgrade scale, without the buff.
func (a *Ant) NormalDamage() float64 {
	return a.BaseDamage * a.DamageScale
}

// ApplyUpgrades recomputes speed and damage from the upgrade levels.
// With regen set the ant also heals 0.5 per antHealth level, up to MaxHealth.
func (a *Ant) ApplyUpgrades(u Upgrades, regen bool) {
	a.Speed = a.BaseSpeed * defs.StatMultiplier(config.SpeedGrowth, config.StatCeiling, u.Level(defs.AntSpeed))
	a.DamageScale = defs.StatMultiplier(config.DamageGrowth, config.StatCeiling, u.Level(defs.AntDamage))
	a.Damage = a.NormalDamage()
	if a.Buffed() {
		a.Damage *= config.TunnelBuffMult
	}
	if regen {
		a.Health = min(a.MaxHealth, a.Health+config.RegenPerLevel*float64(u.Level(defs.AntHealth)))
	}
}
