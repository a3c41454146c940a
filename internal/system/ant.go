// internal/system/ant.go
package system

import (
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/utils"
	"math"
)

// AntSystem advances every ant one tick: tunnel buff cycle, specialty food,
// targeting, movement and clamping.
type AntSystem struct {
	world *entity.World
}

func NewAntSystem(world *entity.World) *AntSystem {
	return &AntSystem{world: world}
}

func (s *AntSystem) Update() {
	for _, ant := range s.world.Colony.Ants() {
		s.updateAnt(ant)
	}
}

func (s *AntSystem) updateAnt(ant *component.Ant) {
	s.advanceTunnel(ant)
	if ant.Tunnel.Phase == component.TunnelStopped {
		clampToArena(ant)
		return
	}
	s.applySpecialty(ant)
	s.retarget(ant)
	s.move(ant)
	clampToArena(ant)
}

// advanceTunnel runs the IDLE -> STOPPED -> BUFFED -> IDLE cycle. An ant whose
// buff ends this tick is not eligible to stop again until the next one.
func (s *AntSystem) advanceTunnel(ant *component.Ant) {
	t := &ant.Tunnel
	switch t.Phase {
	case component.TunnelStopped:
		t.Remaining--
		if t.Remaining <= 0 {
			t.Phase = component.TunnelBuffed
			t.Remaining = config.TunnelBuffTicks
			ant.Damage = ant.NormalDamage() * config.TunnelBuffMult
		}
		return
	case component.TunnelBuffed:
		t.Remaining--
		if t.Remaining <= 0 {
			t.Phase = component.TunnelIdle
			t.Remaining = 0
			ant.Damage = ant.NormalDamage()
		}
		return
	}
	if s.world.Map.IsTunnelAt(ant.Pos.X, ant.Pos.Y) {
		t.Phase = component.TunnelStopped
		t.Remaining = config.TunnelStopTicks
	}
}

func (s *AntSystem) applySpecialty(ant *component.Ant) {
	switch ant.Specialty {
	case defs.Gatherer, defs.MythicSp:
		if utils.Chance(s.world.Rand, config.SpecialtyFoodChance) {
			s.world.Resources.Food++
		}
	}
}

// retarget follows a live target enemy, then lets the nearest enemy inside the
// detection radius override any target.
func (s *AntSystem) retarget(ant *component.Ant) {
	if ant.TargetEnemy != 0 {
		if e := s.world.EnemyByID(ant.TargetEnemy); e != nil {
			ant.Target = e.Pos
		} else {
			ant.TargetEnemy = 0
		}
	}

	var nearest *component.Enemy
	nearestDist := math.Inf(1)
	for _, e := range s.world.Enemies {
		if d := ant.Pos.DistanceTo(e.Pos); d < nearestDist {
			nearest, nearestDist = e, d
		}
	}
	if nearest != nil && nearestDist < config.DetectionRadius {
		ant.Target = nearest.Pos
		ant.TargetEnemy = nearest.ID
	}
}

func (s *AntSystem) move(ant *component.Ant) {
	dx := ant.Target.X - ant.Pos.X
	dy := ant.Target.Y - ant.Pos.Y
	dist := math.Hypot(dx, dy)
	if dist > config.ArrivalThreshold {
		step := math.Min(ant.Speed, dist)
		ant.Pos.X += dx / dist * step
		ant.Pos.Y += dy / dist * step
		return
	}
	if utils.Chance(s.world.Rand, config.WanderChance) {
		ant.Target.X = ant.Pos.X + utils.Spread(s.world.Rand, config.WanderRange)
		ant.Target.Y = ant.Pos.Y + utils.Spread(s.world.Rand, config.WanderRange)
	}
}

func clampToArena(ant *component.Ant) {
	ant.Pos.X = utils.Clamp(ant.Pos.X, config.ArenaMargin, config.ArenaWidth-config.ArenaMargin)
	ant.Pos.Y = utils.Clamp(ant.Pos.Y, config.ArenaMargin, config.ArenaHeight-config.ArenaMargin)
}
