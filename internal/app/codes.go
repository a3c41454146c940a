// internal/app/codes.go
package app

import (
	"fmt"
	"strings"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

// codeEffect applies a redeem code and returns the messages it produced.
type codeEffect func(g *Game) []string

func addResources(coins, food int, water float64, dirt int, msg string) codeEffect {
	return func(g *Game) []string {
		r := &g.World.Resources
		r.Coins += coins
		r.Food += food
		r.Water += water
		r.Dirt += dirt
		return []string{msg}
	}
}

func grantUpgrade(kind defs.UpgradeKind, msg string) codeEffect {
	return func(g *Game) []string {
		g.UpgradeSystem.Grant(kind, 1)
		return []string{msg}
	}
}

func spawnAt(r defs.Rarity, msg string) codeEffect {
	return func(g *Game) []string {
		g.World.SpawnAnt(r, config.ColonyX, config.ColonyY)
		return []string{msg}
	}
}

// redeemCodes ignore the colony cap and food cost.
var redeemCodes = map[string]codeEffect{
	"pink": func(g *Game) []string {
		ant := g.World.SpawnAnt(defs.Common, config.ColonyX, config.ColonyY)
		ant.Color = config.PinkAntColor
		ant.Invincible = true
		ant.Invisible = false
		ant.Shiny = true
		return []string{"Code redeemed! Special bright pink invincible ant spawned!"}
	},
	"bonuscoins": addResources(1000, 0, 0, 0, "Code redeemed! +1000 coins!"),
	"foodboost":  addResources(0, 100, 0, 0, "Code redeemed! +100 food!"),
	"waterwell":  addResources(0, 0, 50, 0, "Code redeemed! +50 water!"),
	"antarmy": func(g *Game) []string {
		msgs := make([]string, 0, 5)
		for range 5 {
			ant := g.World.SpawnRolledAnt()
			msgs = append(msgs, fmt.Sprintf("Code redeemed! %s ant spawned!", ant.Rarity))
		}
		return msgs
	},
	"dirtbag":          addResources(0, 0, 0, 50, "Code redeemed! +50 dirt!"),
	"speedup":          grantUpgrade(defs.AntSpeed, "Code redeemed! Ant speed upgraded!"),
	"healthboost":      grantUpgrade(defs.AntHealth, "Code redeemed! Ant health upgraded!"),
	"damageup":         grantUpgrade(defs.AntDamage, "Code redeemed! Ant damage upgraded!"),
	"mythicant":        spawnAt(defs.Mythic, "Code redeemed! Mythic ant spawned!"),
	"bosskiller":       addResources(1000, 0, 0, 0, "Code redeemed! +1000 coins for being a boss killer!"),
	"colonyboost":      grantUpgrade(defs.ColonySize, "Code redeemed! Colony size upgraded!"),
	"gatherefficiency": grantUpgrade(defs.GatherEfficiency, "Code redeemed! Gather efficiency upgraded!"),
	"waterboost":       grantUpgrade(defs.WaterEfficiency, "Code redeemed! Water efficiency upgraded!"),
	"legendaryspawn":   spawnAt(defs.Legendary, "Code redeemed! Legendary ant spawned!"),
	"maxresources":     addResources(5000, 500, 200, 100, "Code redeemed! Maximum resources boost!"),
	"invinciblearmy": func(g *Game) []string {
		for _, ant := range g.World.Colony.Ants() {
			ant.Invincible = true
		}
		return []string{"Code redeemed! All ants are now invincible!"}
	},
	"levelup": func(g *Game) []string {
		g.World.Progress.Level += 5
		return []string{"Code redeemed! Level increased by 5!"}
	},
	"achievementhunter": func(g *Game) []string {
		g.World.Resources.Coins += 5000
		g.World.Progress.Achievements[defs.AchievementHunter] = true
		return []string{"Code redeemed! Achievement Hunter unlocked! +5000 coins!"}
	},
	"ultimatecode": func(g *Game) []string {
		addResources(10000, 1000, 500, 200, "")(g)
		for _, k := range defs.UpgradeKinds {
			g.World.Upgrades[k] += 2
		}
		g.World.RecomputeAnts()
		return []string{"Code redeemed! Ultimate reward: Max resources and upgrades!"}
	},
}

// RedeemCode applies a cheat code. Codes are trimmed and case-insensitive and
// may be redeemed any number of times.
func (g *Game) RedeemCode(code string) ActionResult {
	effect, ok := redeemCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return g.declined("Invalid code. Try again!")
	}
	msgs := effect(g)
	for _, m := range msgs {
		g.say(m)
	}
	g.logger.Info("code redeemed", "code", strings.ToLower(strings.TrimSpace(code)))
	return ActionResult{OK: true, Message: msgs[len(msgs)-1]}
}
