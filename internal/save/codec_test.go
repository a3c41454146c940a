package save

import (
	"math"
	"testing"

	"go-ant-colony/internal/defs"
)

func sampleState() State {
	s := Default()
	s.Resources.Coins = 12345
	s.Resources.Food = 800
	s.Resources.Water = 42.25
	s.Resources.Ants = 4
	s.Resources.Dirt = 17
	s.Upgrades[defs.AntSpeed] = 3
	s.Upgrades[defs.WaterEfficiency] = 1
	s.Achievements["firstKill"] = true
	s.Level = 6
	s.EnemiesKilled = 57
	s.TotalCoinsEarned = 99999
	s.GameTime = 1234.5
	s.Timestamp = 1700000000123
	return s
}

func TestRoundTrip(t *testing.T) {
	want := sampleState()
	blob, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatal(err)
	}
	if got.Resources != want.Resources {
		t.Errorf("resources %+v, want %+v", got.Resources, want.Resources)
	}
	for _, k := range defs.UpgradeKinds {
		if got.Upgrades[k] != want.Upgrades[k] {
			t.Errorf("upgrade %s = %d, want %d", k, got.Upgrades[k], want.Upgrades[k])
		}
	}
	for id, v := range want.Achievements {
		if got.Achievements[id] != v {
			t.Errorf("achievement %s = %v", id, got.Achievements[id])
		}
	}
	if got.Level != want.Level || got.EnemiesKilled != want.EnemiesKilled ||
		got.TotalCoinsEarned != want.TotalCoinsEarned || got.GameTime != want.GameTime ||
		got.Timestamp != want.Timestamp {
		t.Errorf("progress %+v, want %+v", got, want)
	}
}

func TestRoundTrip_FoodFloor(t *testing.T) {
	s := sampleState()
	s.Resources.Food = 120
	blob, _ := Encode(s)
	got, err := Decode(blob)
	if err != nil {
		t.Fatal(err)
	}
	if got.Resources.Food != 500 {
		t.Fatalf("food %d, want floor 500", got.Resources.Food)
	}
}

func TestDecode_PartialBlobKeepsDefaults(t *testing.T) {
	got, err := Decode([]byte(`{"resources":{"coins":7},"level":3}`))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if got.Resources.Coins != 7 || got.Resources.Water != def.Resources.Water || got.Resources.Ants != def.Resources.Ants {
		t.Fatalf("resources %+v", got.Resources)
	}
	if got.Level != 3 || got.EnemiesKilled != 0 || len(got.Upgrades) != len(defs.UpgradeKinds) {
		t.Fatalf("state %+v", got)
	}
}

func TestDecode_MalformedFieldsAreSkipped(t *testing.T) {
	blob := []byte(`{
		"resources": {"coins": "lots", "food": 900, "water": -5, "dirt": 3.9},
		"upgrades": {"antSpeed": 2, "antDamage": "x", "antHealth": -1, "laser": 9},
		"achievements": {"centurion": true, "firstKill": "yes", "bogus": true},
		"level": 0,
		"enemiesKilled": null,
		"gameTime": "soon"
	}`)
	got, err := Decode(blob)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if got.Resources.Coins != def.Resources.Coins || got.Resources.Food != 900 ||
		got.Resources.Water != def.Resources.Water || got.Resources.Dirt != 3 {
		t.Fatalf("resources %+v", got.Resources)
	}
	if got.Upgrades[defs.AntSpeed] != 2 || got.Upgrades[defs.AntDamage] != 0 || got.Upgrades[defs.AntHealth] != 0 {
		t.Fatalf("upgrades %+v", got.Upgrades)
	}
	if _, ok := got.Upgrades["laser"]; ok {
		t.Fatal("unknown upgrade kind accepted")
	}
	if !got.Achievements["centurion"] || got.Achievements["firstKill"] {
		t.Fatalf("achievements %+v", got.Achievements)
	}
	if _, ok := got.Achievements["bogus"]; ok {
		t.Fatal("unknown achievement accepted")
	}
	if got.Level != 1 || got.EnemiesKilled != 0 || got.GameTime != 0 {
		t.Fatalf("progress %+v", got)
	}
}

func TestDecode_HugeNumbersSaturate(t *testing.T) {
	s, err := Decode([]byte(`{"resources":{"ants":1e300,"coins":1e30},"upgrades":{"antSpeed":1e19}}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Resources.Ants != math.MaxInt || s.Resources.Coins != math.MaxInt {
		t.Fatalf("resources %+v", s.Resources)
	}
	if s.Upgrades.Level(defs.AntSpeed) != math.MaxInt {
		t.Fatalf("antSpeed level = %d", s.Upgrades.Level(defs.AntSpeed))
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	for _, blob := range []string{``, `null`, `[1,2]`, `"save"`, `{broken`} {
		got, err := Decode([]byte(blob))
		if err == nil {
			t.Errorf("Decode(%q) should fail", blob)
		}
		if got.Resources != Default().Resources {
			t.Errorf("Decode(%q) should return defaults", blob)
		}
	}
}
