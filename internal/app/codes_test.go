package app

import (
	"testing"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

func TestRedeemCode_Resources(t *testing.T) {
	tests := []struct {
		code              string
		coins, food, dirt int
		water             float64
	}{
		{"bonuscoins", 1000, 0, 0, 0},
		{"foodboost", 0, 100, 0, 0},
		{"waterwell", 0, 0, 0, 50},
		{"dirtbag", 0, 0, 50, 0},
		{"bosskiller", 1000, 0, 0, 0},
		{"maxresources", 5000, 500, 100, 200},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			g, _, _ := newTestGame(t)
			before := g.World.Resources
			if res := g.RedeemCode(tt.code); !res.OK {
				t.Fatalf("RedeemCode(%q): %+v", tt.code, res)
			}
			after := g.World.Resources
			if after.Coins-before.Coins != tt.coins || after.Food-before.Food != tt.food ||
				after.Dirt-before.Dirt != tt.dirt || after.Water-before.Water != tt.water {
				t.Fatalf("resources %+v -> %+v", before, after)
			}
		})
	}
}

func TestRedeemCode_TrimmedAndCaseInsensitive(t *testing.T) {
	g, _, _ := newTestGame(t)
	res := g.RedeemCode("  PiNk \n")
	if !res.OK || res.Message != "Code redeemed! Special bright pink invincible ant spawned!" {
		t.Fatalf("pink: %+v", res)
	}
	ant := g.World.Colony.At(1)
	if ant == nil || !ant.Invincible || !ant.Shiny || ant.Invisible || ant.Color != config.PinkAntColor {
		t.Fatalf("pink ant: %+v", ant)
	}
	if g.World.Resources.Ants != 2 {
		t.Fatalf("ants = %d", g.World.Resources.Ants)
	}
}

func TestRedeemCode_Invalid(t *testing.T) {
	g, _, _ := newTestGame(t)
	before := g.World.Resources
	res := g.RedeemCode("free money")
	if res.OK || res.Message != "Invalid code. Try again!" {
		t.Fatalf("invalid code: %+v", res)
	}
	if g.World.Resources != before {
		t.Fatal("invalid code changed state")
	}
	if g.messages.Last() != "Invalid code. Try again!" {
		t.Fatalf("last message %q", g.messages.Last())
	}
}

func TestRedeemCode_AntArmyIgnoresCap(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.World.Progress.Level = 0
	g.RedeemCode("antarmy")
	g.RedeemCode("antarmy")
	if g.World.Resources.Ants != 11 || g.World.Colony.Len() != 11 {
		t.Fatalf("ants %d colony %d", g.World.Resources.Ants, g.World.Colony.Len())
	}
	if g.World.Resources.Ants <= g.World.MaxAnts() {
		t.Fatal("expected the colony to exceed its cap")
	}
}

func TestRedeemCode_Upgrades(t *testing.T) {
	g, _, _ := newTestGame(t)
	codes := map[string]defs.UpgradeKind{
		"speedup":          defs.AntSpeed,
		"healthboost":      defs.AntHealth,
		"damageup":         defs.AntDamage,
		"colonyboost":      defs.ColonySize,
		"gatherefficiency": defs.GatherEfficiency,
		"waterboost":       defs.WaterEfficiency,
	}
	for code, kind := range codes {
		g.RedeemCode(code)
		if g.World.Upgrades.Level(kind) != 1 {
			t.Fatalf("%s: %s level %d", code, kind, g.World.Upgrades.Level(kind))
		}
	}
	if g.World.Resources.Coins != config.StartCoins {
		t.Fatal("upgrade codes must be free")
	}

	g.RedeemCode("ultimatecode")
	for _, k := range defs.UpgradeKinds {
		if g.World.Upgrades.Level(k) != 3 {
			t.Fatalf("after ultimatecode %s = %d", k, g.World.Upgrades.Level(k))
		}
	}
	if got := g.World.Colony.Lead().Speed; got < 1.95 || got > 1.96 {
		t.Fatalf("lead speed after 3 speed levels = %v", got)
	}
}

func TestRedeemCode_SpawnsAndFlags(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.RedeemCode("mythicant")
	g.RedeemCode("legendaryspawn")
	if g.World.Colony.At(1).Rarity != defs.Mythic || g.World.Colony.At(2).Rarity != defs.Legendary {
		t.Fatal("code spawns have the wrong rarity")
	}

	g.RedeemCode("invinciblearmy")
	for _, a := range g.World.Colony.Ants() {
		if !a.Invincible {
			t.Fatal("invinciblearmy missed an ant")
		}
	}

	g.RedeemCode("levelup")
	if g.World.Progress.Level != 6 {
		t.Fatalf("level = %d", g.World.Progress.Level)
	}

	coins := g.World.Resources.Coins
	g.RedeemCode("achievementhunter")
	if !g.World.Progress.Achievements[defs.AchievementHunter] || g.World.Resources.Coins != coins+5000 {
		t.Fatal("achievementhunter not applied")
	}
	if g.World.Progress.TotalCoinsEarned != 0 {
		t.Fatal("code coins must not count as earned")
	}
}
