package system

import (
	"math"
	"testing"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/event"
)

func TestCoinReward(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		ant        defs.Rarity
		speedLevel int
		want       int
	}{
		{"common enemy common ant", 5, defs.Common, 0, 5},
		{"speed bonus", 5, defs.Common, 1, 6},
		{"rare ant", 10, defs.Rare, 0, 15},
		{"small boss mythic ant", 200, defs.Mythic, 0, 1000},
		{"large boss legendary ant", 500, defs.Legendary, 0, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoinReward(tt.base, tt.ant, tt.speedLevel); got != tt.want {
				t.Fatalf("CoinReward = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombat_SimultaneousDamage(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	enemy := addEnemy(w, defs.Common, ant.Pos.X+10, ant.Pos.Y+10)
	d, _ := newRecordingDispatcher()

	NewCombatSystem(w, d).Update()

	if ant.Health != 90 || enemy.Health != 40 {
		t.Fatalf("ant %v enemy %v, want 90 and 40", ant.Health, enemy.Health)
	}
}

func TestCombat_NoCollisionOutsideBox(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	enemy := addEnemy(w, defs.Common, ant.Pos.X+20, ant.Pos.Y)

	NewCombatSystem(w, nil).Update()

	if ant.Health != 100 || enemy.Health != 50 {
		t.Fatal("a 20 unit gap is not a collision")
	}
}

func TestCombat_WarriorDealsMore(t *testing.T) {
	w, _ := newTestWorld()
	w.RemoveAnt(w.Colony.Lead())
	w.SpawnAnt(defs.Epic, 100, 100)
	enemy := addEnemy(w, defs.Legendary, 100, 100)

	NewCombatSystem(w, nil).Update()

	if enemy.Health != 150-15 {
		t.Fatalf("enemy health %v, want 135", enemy.Health)
	}
}

func TestCombat_DamageReductionFromAntDamageUpgrade(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	w.Upgrades[defs.AntDamage] = 5
	addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y)

	NewCombatSystem(w, nil).Update()
	if ant.Health != 95 {
		t.Fatalf("health %v, want 95 with 50%% reduction", ant.Health)
	}

	if got := DamageReduction(40); got != 0.8 {
		t.Fatalf("reduction must cap at 0.8, got %v", got)
	}
	w.Upgrades[defs.AntDamage] = 40
	before := ant.Health
	NewCombatSystem(w, nil).Update()
	if math.Abs(before-ant.Health-2) > 1e-9 {
		t.Fatalf("capped reduction took %v, want 2", before-ant.Health)
	}
}

func TestCombat_InvincibleAntTakesNoDamage(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	ant.Invincible = true
	enemy := addEnemy(w, defs.Mythic, ant.Pos.X, ant.Pos.Y)

	NewCombatSystem(w, nil).Update()

	if ant.Health != 100 {
		t.Fatalf("invincible ant health %v", ant.Health)
	}
	if enemy.Health != 240 {
		t.Fatalf("enemy still takes damage, got %v", enemy.Health)
	}
}

func TestCombat_EnemyDeathRewards(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	enemy := addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y)
	enemy.Health = 5
	d, rec := newRecordingDispatcher(event.EnemyKilled, event.Message)
	food, dirt, coins := w.Resources.Food, w.Resources.Dirt, w.Resources.Coins

	NewCombatSystem(w, d).Update()

	if len(w.Enemies) != 0 {
		t.Fatal("dead enemy not removed")
	}
	if w.Resources.Food != food+2 || w.Resources.Dirt != dirt+3 || w.Resources.Coins != coins+5 {
		t.Fatalf("rewards: %+v", w.Resources)
	}
	if w.Progress.EnemiesKilled != 1 || w.Progress.TotalCoinsEarned != 5 {
		t.Fatalf("progress: %+v", w.Progress)
	}
	if len(w.Particles) != 1 {
		t.Fatalf("expected one coin particle, got %d", len(w.Particles))
	}
	if rec.count(event.EnemyKilled) != 1 || rec.count(event.Message) != 1 {
		t.Fatalf("events: %+v", rec.events)
	}
}

func TestCombat_NoParticlesWhenDisabled(t *testing.T) {
	w, _ := newTestWorld()
	w.ParticlesEnabled = false
	ant := w.Colony.Lead()
	addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y).Health = 1

	NewCombatSystem(w, nil).Update()

	if len(w.Particles) != 0 {
		t.Fatal("particles spawned while disabled")
	}
}

func TestCombat_AntDeathRemovesAndDecrements(t *testing.T) {
	w, _ := newTestWorld()
	w.SpawnAnt(defs.Common, 100, 100)
	ant := w.Colony.Lead()
	ant.Health = 5
	enemy := addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y)
	d, rec := newRecordingDispatcher(event.AntDied)

	NewCombatSystem(w, d).Update()

	if w.Colony.Len() != 1 || w.Resources.Ants != 1 {
		t.Fatalf("colony=%d ants=%d, want 1", w.Colony.Len(), w.Resources.Ants)
	}
	if rec.count(event.AntDied) != 1 {
		t.Fatal("AntDied not dispatched")
	}
	if enemy.Health != 40 {
		t.Fatalf("the dying ant still hits back, enemy health %v", enemy.Health)
	}
}

func TestCombat_DeadAntStopsFighting(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	ant.Health = 5
	first := addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y)
	second := addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y)

	NewCombatSystem(w, nil).Update()

	if first.Health != 40 || second.Health != 50 {
		t.Fatalf("first %v second %v", first.Health, second.Health)
	}
}

func TestCombat_LevelUpEveryTenthKill(t *testing.T) {
	w, _ := newTestWorld()
	w.Progress.EnemiesKilled = 9
	ant := w.Colony.Lead()
	addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y).Health = 1
	d, rec := newRecordingDispatcher(event.LevelUp)

	NewCombatSystem(w, d).Update()

	if w.Progress.Level != 2 || rec.count(event.LevelUp) != 1 {
		t.Fatalf("level %d, levelups %d", w.Progress.Level, rec.count(event.LevelUp))
	}

	addEnemy(w, defs.Common, ant.Pos.X, ant.Pos.Y).Health = 1
	NewCombatSystem(w, d).Update()
	if w.Progress.Level != 2 {
		t.Fatal("11th kill must not level up")
	}
}

func TestCombat_BossCoins(t *testing.T) {
	w, _ := newTestWorld()
	ant := w.Colony.Lead()
	ant.Damage = 10000
	w.Enemies = append(w.Enemies, component.NewBoss(w.NewEntity(), defs.BossLarge, ant.Pos.X, ant.Pos.Y))

	NewCombatSystem(w, nil).Update()

	if w.Progress.TotalCoinsEarned != 500 {
		t.Fatalf("earned %d, want 500", w.Progress.TotalCoinsEarned)
	}
}
