// internal/system/enemy.go
package system

import (
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/utils"
	"math"
)

// EnemySystem spawns enemies and bosses, moves them down the arena and culls
// the ones that leave it. Leaving the arena has no consequence.
type EnemySystem struct {
	world *entity.World
}

func NewEnemySystem(world *entity.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Update() {
	s.spawn()

	kept := s.world.Enemies[:0]
	for _, e := range s.world.Enemies {
		e.Pos.Y += e.Speed
		if e.Pos.Y < config.ArenaHeight {
			kept = append(kept, e)
		}
	}
	clear(s.world.Enemies[len(kept):])
	s.world.Enemies = kept
}

// SpawnChances returns the per-tick regular, small boss and large boss chances
// for a level.
func SpawnChances(level int) (regular, smallBoss, largeBoss float64) {
	l := float64(level)
	return config.EnemySpawnFactor * math.Log(l+1),
		config.SmallBossSpawnFactor * math.Sqrt(l),
		config.LargeBossSpawnFactor * math.Log(l+1)
}

// spawn makes at most one spawn per tick; each branch draws independently.
func (s *EnemySystem) spawn() {
	w := s.world
	regular, small, large := SpawnChances(w.Progress.Level)
	switch {
	case utils.Chance(w.Rand, regular):
		r := defs.PickEnemyRarity(w.Progress.Level, utils.Roll100(w.Rand))
		x := w.Rand.Float64() * config.ArenaWidth
		w.Enemies = append(w.Enemies, component.NewEnemy(w.NewEntity(), r, x, 0))
	case utils.Chance(w.Rand, small):
		x := w.Rand.Float64() * config.ArenaWidth
		w.Enemies = append(w.Enemies, component.NewBoss(w.NewEntity(), defs.BossSmall, x, 0))
	case utils.Chance(w.Rand, large):
		x := w.Rand.Float64() * config.ArenaWidth
		w.Enemies = append(w.Enemies, component.NewBoss(w.NewEntity(), defs.BossLarge, x, 0))
	}
}
