// internal/system/combat.go
package system

import (
	"fmt"
	"math"
	"slices"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
)

// CombatSystem resolves every colliding (ant, enemy) pair once per tick.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Colliding is the coarse box test standing in for collision.
func Colliding(a, b component.Position) bool {
	return math.Abs(a.X-b.X) < config.CollisionRange && math.Abs(a.Y-b.Y) < config.CollisionRange
}

// DamageReduction is the share of enemy damage the antDamage upgrade absorbs.
func DamageReduction(antDamageLevel int) float64 {
	return math.Min(config.MaxDamageReduction, float64(antDamageLevel)*config.ReductionPerLevel)
}

// EffectiveDamage is what an ant deals per collision tick.
func EffectiveDamage(ant *component.Ant) float64 {
	if ant.Specialty == defs.Warrior {
		return ant.Damage * config.WarriorDamageMult
	}
	return ant.Damage
}

// CoinReward is floor(base × antRarityFactor × (1 + 0.2 × antSpeedLevel)).
func CoinReward(baseCoins int, antRarity defs.Rarity, antSpeedLevel int) int {
	factor := defs.AntDef(antRarity).CoinFactor
	bonus := 1 + float64(antSpeedLevel)*config.SpeedCoinBonus
	return int(math.Floor(float64(baseCoins) * factor * bonus))
}

func (s *CombatSystem) Update() {
	w := s.world
	reduction := DamageReduction(w.Upgrades.Level(defs.AntDamage))

	for _, ant := range slices.Clone(w.Colony.Ants()) {
		// Enemies killed by an earlier ant are already gone from w.Enemies.
		for _, enemy := range slices.Clone(w.Enemies) {
			if !Colliding(ant.Pos, enemy.Pos) {
				continue
			}
			if !ant.Invincible {
				ant.Health -= enemy.Damage * (1 - reduction)
			}
			enemy.Health -= EffectiveDamage(ant)

			antDied := ant.Health <= 0
			if antDied {
				w.RemoveAnt(ant)
				s.eventDispatcher.Dispatch(event.Event{Type: event.AntDied, Data: ant})
				s.eventDispatcher.Message(fmt.Sprintf("A %s ant fell in battle!", ant.Rarity))
			}
			if enemy.Health <= 0 {
				s.killEnemy(ant, enemy)
			}
			if antDied {
				break
			}
		}
	}
}

func (s *CombatSystem) killEnemy(ant *component.Ant, enemy *component.Enemy) {
	w := s.world
	w.RemoveEnemy(enemy)
	w.Resources.Food += config.KillFoodReward
	w.Resources.Dirt += config.KillDirtReward
	w.Progress.EnemiesKilled++

	coins := CoinReward(enemy.Coins, ant.Rarity, w.Upgrades.Level(defs.AntSpeed))
	w.EarnCoins(coins)
	Emit(w, enemy.Pos.X, enemy.Pos.Y, config.CoinColor, config.CoinParticleSize)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Enemy: enemy, Ant: ant, Coins: coins},
	})
	name := enemy.Rarity.String()
	if enemy.IsBoss() {
		name = string(enemy.Boss.Size) + " boss"
	}
	s.eventDispatcher.Message(fmt.Sprintf("Earned %d coins from defeating %s enemy!", coins, name))

	if w.Progress.EnemiesKilled%config.KillsPerLevel == 0 {
		w.Progress.Level++
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: w.Progress.Level})
		s.eventDispatcher.Message(fmt.Sprintf("Level up! Now level %d!", w.Progress.Level))
	}
}
