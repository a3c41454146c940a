// internal/system/survival.go
package system

import (
	"slices"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
)

// MetabolismSystem drains water: each ant drinks 0.1 per second.
type MetabolismSystem struct {
	world *entity.World
}

func NewMetabolismSystem(world *entity.World) *MetabolismSystem {
	return &MetabolismSystem{world: world}
}

func (s *MetabolismSystem) Update() {
	r := &s.world.Resources
	r.Water = max(0, r.Water-float64(r.Ants)*config.WaterPerAntPerSecond/config.TicksPerSec)
}

// DehydrationSystem hurts every non-invincible ant by 1 per tick while water
// is at or below zero. It runs independently of combat damage.
type DehydrationSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewDehydrationSystem(world *entity.World, eventDispatcher *event.Dispatcher) *DehydrationSystem {
	return &DehydrationSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *DehydrationSystem) Update() {
	w := s.world
	if w.Resources.Water > 0 {
		return
	}
	for _, ant := range slices.Clone(w.Colony.Ants()) {
		if ant.Invincible {
			continue
		}
		ant.Health -= config.DehydrationDamage
		if ant.Health <= 0 {
			w.RemoveAnt(ant)
			s.eventDispatcher.Dispatch(event.Event{Type: event.AntDied, Data: ant})
			s.eventDispatcher.Message("An ant died from dehydration!")
		}
	}
}
