package system

import (
	"math"
	"testing"

	"go-ant-colony/internal/defs"
)

func TestUpgradeSystem_Purchase(t *testing.T) {
	w, _ := newTestWorld()
	s := NewUpgradeSystem(w, nil)
	w.Resources.Coins = 249

	if cost, ok := s.Purchase(defs.AntSpeed); !ok || cost != 100 {
		t.Fatalf("first purchase cost %d ok %v", cost, ok)
	}
	if s.Cost(defs.AntSpeed) != 150 {
		t.Fatalf("next cost %d", s.Cost(defs.AntSpeed))
	}
	if _, ok := s.Purchase(defs.AntSpeed); ok {
		t.Fatal("149 coins cannot buy a 150 upgrade")
	}
	if w.Resources.Coins != 149 || w.Upgrades.Level(defs.AntSpeed) != 1 {
		t.Fatalf("declined purchase changed state: coins %d level %d", w.Resources.Coins, w.Upgrades.Level(defs.AntSpeed))
	}
	if w.Colony.Lead().Speed != 1.25 {
		t.Fatalf("purchase must recompute speed, got %v", w.Colony.Lead().Speed)
	}
	if _, ok := s.Purchase("teleport"); ok {
		t.Fatal("unknown kind purchased")
	}
}

func TestUpgradeSystem_PurchaseAffordableInOrder(t *testing.T) {
	w, _ := newTestWorld()
	s := NewUpgradeSystem(w, nil)
	w.Resources.Coins = 350

	bought := s.PurchaseAffordable()

	want := []defs.UpgradeKind{defs.AntSpeed, defs.AntHealth, defs.AntDamage}
	if len(bought) != len(want) {
		t.Fatalf("bought %v, want %v", bought, want)
	}
	for i := range want {
		if bought[i] != want[i] {
			t.Fatalf("bought %v, want %v", bought, want)
		}
	}
	if w.Resources.Coins != 50 {
		t.Fatalf("coins %d", w.Resources.Coins)
	}
}

func TestRecompute_StatsFollowCappedFormula(t *testing.T) {
	w, _ := newTestWorld()
	s := NewUpgradeSystem(w, nil)
	ant := w.Colony.Lead()
	for level := 1; level <= 40; level++ {
		s.Grant(defs.AntSpeed, 1)
		s.Grant(defs.AntDamage, 1)
		wantSpeed := ant.BaseSpeed * math.Min(100, math.Pow(1.25, float64(level)))
		wantDamage := ant.BaseDamage * math.Min(100, math.Pow(1.35, float64(level)))
		if ant.Speed != wantSpeed || ant.Damage != wantDamage {
			t.Fatalf("level %d: speed %v damage %v, want %v %v", level, ant.Speed, ant.Damage, wantSpeed, wantDamage)
		}
		if ant.Speed > ant.BaseSpeed*100 || ant.Damage > ant.BaseDamage*100 {
			t.Fatalf("level %d exceeds the ceiling", level)
		}
	}
}

func TestRecompute_RegenClampsToMax(t *testing.T) {
	w, _ := newTestWorld()
	s := NewUpgradeSystem(w, nil)
	ant := w.Colony.Lead()
	ant.Health = 50

	s.Grant(defs.AntHealth, 4)
	if ant.Health != 52 {
		t.Fatalf("health %v, want 52", ant.Health)
	}
	if ant.MaxHealth != 100 {
		t.Fatalf("max health changed to %v", ant.MaxHealth)
	}

	ant.Health = 99
	s.Grant(defs.AntHealth, 1)
	if ant.Health != 100 {
		t.Fatalf("regen overflowed max: %v", ant.Health)
	}
}
