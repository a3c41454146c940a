// internal/entity/world.go
package entity

import (
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/types"
	"go-ant-colony/internal/utils"
	"go-ant-colony/pkg/tunnelmap"
)

// World is the simulation context handed to every system: the colony, the
// enemy set, the map, the effects list, the resource pool and progression.
type World struct {
	NextID    types.EntityID
	Colony    *Colony
	Enemies   []*component.Enemy
	Particles []*component.Particle
	Map       *tunnelmap.TunnelMap
	Resources component.Resources
	Upgrades  component.Upgrades
	Progress  component.Progress
	// TunnelsDug counts successful dig actions; the cap lives here, not in the map.
	TunnelsDug       int
	ParticlesEnabled bool
	Rand             utils.RandomSource
}

// NewWorld builds the starting state: default resources and one common ant at
// the colony centre.
func NewWorld(r utils.RandomSource) *World {
	w := &World{
		NextID:           1,
		Colony:           NewColony(),
		Map:              tunnelmap.New(config.GridWidth, config.GridHeight, config.CellSize),
		ParticlesEnabled: true,
		Rand:             r,
	}
	w.Reset()
	return w
}

// Reset restores every default in place.
func (w *World) Reset() {
	w.Colony.clear()
	w.Enemies = nil
	w.Particles = nil
	w.Map.Fill(tunnelmap.Dirt)
	w.Resources = component.DefaultResources()
	w.Upgrades = component.NewUpgrades()
	w.Progress = component.NewProgress()
	w.TunnelsDug = 0
	w.Colony.add(component.NewAnt(w.NewEntity(), defs.Common, config.ColonyX, config.ColonyY))
	w.syncAntCount()
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// SpawnAnt adds an ant of rarity r at (x, y), scaled by the current upgrades.
func (w *World) SpawnAnt(r defs.Rarity, x, y float64) *component.Ant {
	a := component.NewAnt(w.NewEntity(), r, x, y)
	a.ApplyUpgrades(w.Upgrades, false)
	w.Colony.add(a)
	w.syncAntCount()
	return a
}

// SpawnRolledAnt rolls a rarity from the ant spawn table and places the ant
// near the colony centre.
func (w *World) SpawnRolledAnt() *component.Ant {
	r := defs.PickAntRarity(utils.Roll100(w.Rand))
	x := config.ColonyX + utils.Spread(w.Rand, config.SpawnSpread)
	y := config.ColonyY + utils.Spread(w.Rand, config.SpawnSpread)
	return w.SpawnAnt(r, x, y)
}

// RemoveAnt takes a out of the colony and decrements the ant counter.
func (w *World) RemoveAnt(a *component.Ant) {
	if w.Colony.remove(a) {
		w.syncAntCount()
	}
}

func (w *World) syncAntCount() {
	w.Resources.Ants = w.Colony.Len()
}

// EnemyByID returns the live enemy with the given id, or nil.
func (w *World) EnemyByID(id types.EntityID) *component.Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveEnemy drops e from the enemy set.
func (w *World) RemoveEnemy(e *component.Enemy) {
	for i, other := range w.Enemies {
		if other == e {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return
		}
	}
}

// EarnCoins credits coins won in combat; they also count toward the total.
func (w *World) EarnCoins(n int) {
	w.Resources.Coins += n
	w.Progress.TotalCoinsEarned += n
}

// RecomputeAnts reapplies upgrade scaling to every ant, with regeneration.
func (w *World) RecomputeAnts() {
	for _, a := range w.Colony.Ants() {
		a.ApplyUpgrades(w.Upgrades, true)
	}
}

// MaxAnts is the manual spawn cap.
func (w *World) MaxAnts() int {
	return config.BaseMaxAnts + config.MaxAntsLevel*w.Progress.Level + config.MaxAntsColony*w.Upgrades.Level(defs.ColonySize)
}

// AddParticle appends p when particles are enabled.
func (w *World) AddParticle(p *component.Particle) {
	if w.ParticlesEnabled {
		w.Particles = append(w.Particles, p)
	}
}
