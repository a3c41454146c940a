// internal/system/progression.go
package system

import (
	"fmt"
	"math"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
	"go-ant-colony/internal/utils"
)

// ProgressionSystem unlocks achievements and runs the passive upgrade effects.
type ProgressionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *ProgressionSystem) Update() {
	s.CheckAchievements()
	s.autoGather()
	s.autoSpawn()
}

// CheckAchievements unlocks each achievement at most once.
func (s *ProgressionSystem) CheckAchievements() {
	p := &s.world.Progress
	for _, a := range defs.Achievements {
		if p.Achievements[a.ID] || p.Metric(a.Metric) < a.Threshold {
			continue
		}
		p.Achievements[a.ID] = true
		s.world.Resources.Coins += a.Bonus
		s.eventDispatcher.Dispatch(event.Event{Type: event.AchievementUnlocked, Data: a})
		s.eventDispatcher.Message(fmt.Sprintf("Achievement Unlocked: %s! +%d coins", a.Title, a.Bonus))
	}
}

func (s *ProgressionSystem) autoGather() {
	w := s.world
	lvl := w.Upgrades.Level(defs.GatherEfficiency)
	if lvl <= 0 || !utils.Chance(w.Rand, config.AutoFoodChancePerLv*float64(lvl)) {
		return
	}
	w.Resources.Food += int(math.Floor(float64(lvl) * config.AutoFoodPerLvl))
}

// autoSpawn ignores the manual spawn cap.
func (s *ProgressionSystem) autoSpawn() {
	w := s.world
	lvl := w.Upgrades.Level(defs.ColonySize)
	if lvl <= 0 || !utils.Chance(w.Rand, config.AutoSpawnChancePerL*float64(lvl)) {
		return
	}
	if w.Resources.Food < config.AutoSpawnFoodCost {
		return
	}
	w.Resources.Food -= config.AutoSpawnFoodCost
	ant := w.SpawnRolledAnt()
	s.eventDispatcher.Dispatch(event.Event{Type: event.AntSpawned, Data: ant})
	s.eventDispatcher.Message(fmt.Sprintf("Auto-spawned %s ant! (%d total)", ant.Rarity, w.Resources.Ants))
}
