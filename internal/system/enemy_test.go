package system

import (
	"math"
	"testing"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

func TestSpawnChances(t *testing.T) {
	r, s, l := SpawnChances(1)
	if math.Abs(r-0.005*math.Ln2) > 1e-15 || s != 0.0008 || math.Abs(l-0.00015*math.Ln2) > 1e-15 {
		t.Fatalf("level 1 chances %v %v %v", r, s, l)
	}
}

func TestEnemySystem_SpawnsRegularEnemy(t *testing.T) {
	w, src := newTestWorld()
	src.Floats = []float64{0.0, 0.5}
	src.Ints = []int{0}

	NewEnemySystem(w).Update()

	if len(w.Enemies) != 1 {
		t.Fatalf("enemies %d", len(w.Enemies))
	}
	e := w.Enemies[0]
	if e.Rarity != defs.Mythic || e.IsBoss() {
		t.Fatalf("roll 0 at level 1 should be a mythic enemy, got %+v", e)
	}
	if e.Pos.X != 400 || e.Pos.Y != 1.5 {
		t.Fatalf("spawned at %+v, want x 400 moved to y 1.5", e.Pos)
	}
}

func TestEnemySystem_SpawnsBosses(t *testing.T) {
	w, src := newTestWorld()
	src.Floats = []float64{0.99, 0.0, 0.25}
	NewEnemySystem(w).Update()
	if len(w.Enemies) != 1 || !w.Enemies[0].IsBoss() || w.Enemies[0].Boss.Size != defs.BossSmall {
		t.Fatalf("expected a small boss, got %+v", w.Enemies)
	}
	if w.Enemies[0].Pos.X != 200 || w.Enemies[0].Rarity != defs.Mythic || w.Enemies[0].Radius != 12 {
		t.Fatalf("small boss %+v", w.Enemies[0])
	}

	src.Floats = []float64{0.99, 0.99, 0.0, 0.5}
	NewEnemySystem(w).Update()
	if len(w.Enemies) != 2 || w.Enemies[1].Boss.Size != defs.BossLarge || w.Enemies[1].MaxHealth != 1000 {
		t.Fatalf("expected a large boss, got %+v", w.Enemies[1])
	}
}

func TestEnemySystem_CullsAtArenaBottom(t *testing.T) {
	w, _ := newTestWorld()
	addEnemy(w, defs.Common, 10, config.ArenaHeight-0.1)
	staying := addEnemy(w, defs.Common, 20, 100)
	coins := w.Resources.Coins

	NewEnemySystem(w).Update()

	if len(w.Enemies) != 1 || w.Enemies[0] != staying {
		t.Fatalf("enemies %+v", w.Enemies)
	}
	if w.Resources.Coins != coins || w.Progress.EnemiesKilled != 0 {
		t.Fatal("leaving the arena must have no consequence")
	}
}
