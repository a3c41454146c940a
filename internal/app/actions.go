// internal/app/actions.go
package app

import (
	"context"
	"fmt"
	"math"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/system"
	"go-ant-colony/internal/utils"
)

// DigTunnel spends dirt to carve a random tunnel. The tunnel cap is enforced
// here; the map itself has no limit.
func (g *Game) DigTunnel() ActionResult {
	w := g.World
	if w.TunnelsDug >= config.MaxTunnels {
		return g.declined(fmt.Sprintf("Maximum tunnel limit reached! (%d tunnels max)", config.MaxTunnels))
	}
	if w.Resources.Dirt < config.DigDirtCost {
		return g.declined("Not enough dirt to dig a tunnel.")
	}
	w.Resources.Dirt -= config.DigDirtCost
	w.Map.DigRandomTunnel(w.Rand)
	w.TunnelsDug++
	return g.ok(fmt.Sprintf("Tunnel dug! Colony expanded. (%d/%d tunnels)", w.TunnelsDug, config.MaxTunnels))
}

// GatherFoodChance is min(0.95, 0.3 + 0.1 × gatherEfficiency).
func GatherFoodChance(level int) float64 {
	return math.Min(config.GatherMaxChance, config.GatherBaseChance+float64(level)*config.GatherChancePerLvl)
}

// GatherFood tries to find food. Failure still counts as an action.
func (g *Game) GatherFood() ActionResult {
	w := g.World
	level := w.Upgrades.Level(defs.GatherEfficiency)
	if !utils.Chance(w.Rand, GatherFoodChance(level)) {
		return g.declined("No food found this time.")
	}
	amount := 1 + int(math.Floor(float64(level)*config.GatherFoodPerLvl))
	w.Resources.Food += amount
	return g.ok(fmt.Sprintf("Food gathered! (+%d)", amount))
}

// GatherWater always succeeds.
func (g *Game) GatherWater() ActionResult {
	w := g.World
	amount := config.WaterBaseAmount + int(math.Floor(float64(w.Upgrades.Level(defs.WaterEfficiency))*config.WaterPerLvl))
	w.Resources.Water += float64(amount)
	return g.ok(fmt.Sprintf("Water gathered! (+%d)", amount))
}

// SpawnAnt buys a rolled ant with food. The cap is checked before the cost.
func (g *Game) SpawnAnt() ActionResult {
	w := g.World
	maxAnts := w.MaxAnts()
	if w.Resources.Ants >= maxAnts {
		return g.declined(fmt.Sprintf("Maximum ant limit reached for level %d! (%d ants max)", w.Progress.Level, maxAnts))
	}
	if w.Resources.Food < config.SpawnFoodCost {
		return g.declined(fmt.Sprintf("Not enough food to spawn an ant. Need %d food.", config.SpawnFoodCost))
	}
	w.Resources.Food -= config.SpawnFoodCost
	ant := w.SpawnRolledAnt()
	return g.ok(fmt.Sprintf("New %s ant spawned for %d food! (%d/%d ants)", ant.Rarity, config.SpawnFoodCost, w.Resources.Ants, maxAnts))
}

// PurchaseUpgrade buys one level of kind.
func (g *Game) PurchaseUpgrade(kind defs.UpgradeKind) ActionResult {
	if !kind.Valid() {
		return g.declined(fmt.Sprintf("Unknown upgrade %q.", kind))
	}
	cost, ok := g.UpgradeSystem.Purchase(kind)
	if !ok {
		return g.declined(fmt.Sprintf("Not enough coins for %s. Need %d coins.", kind, cost))
	}
	return ActionResult{OK: true, Message: g.messages.Last()}
}

// PurchaseAffordableUpgrades buys one level of every kind affordable at the
// moment it is reached, in fixed kind order.
func (g *Game) PurchaseAffordableUpgrades() ActionResult {
	bought := g.UpgradeSystem.PurchaseAffordable()
	if len(bought) == 0 {
		return g.declined("No upgrades affordable.")
	}
	return ActionResult{OK: true, Message: fmt.Sprintf("Purchased %d upgrade(s).", len(bought))}
}

// UpgradeCost is the price of the next level of kind.
func (g *Game) UpgradeCost(kind defs.UpgradeKind) int {
	return g.UpgradeSystem.Cost(kind)
}

func (g *Game) TogglePause() ActionResult {
	g.paused = !g.paused
	if g.paused {
		return g.ok("Game paused")
	}
	return g.ok("Game resumed")
}

// Reset restores every default, unpauses and deletes the stored save.
func (g *Game) Reset() ActionResult {
	if g.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), g.saveTimeout)
		err := g.store.Delete(ctx, g.settings.SaveSlot)
		cancel()
		if err != nil {
			g.logger.Warn("failed to delete save on reset", "err", err)
		}
	}
	g.World.Reset()
	g.paused = false
	g.lastAutoSave = 0
	return g.ok("Game reset! Starting fresh.")
}

// SetAntTarget points ant i at (x, y) and drops any enemy it was chasing.
func (g *Game) SetAntTarget(i int, x, y float64) bool {
	ant := g.World.Colony.At(i)
	if ant == nil {
		return false
	}
	ant.Target = component.Position{X: x, Y: y}
	ant.TargetEnemy = 0
	return true
}

// NudgeLeadAnt shifts the lead ant's target by (dx, dy) steps of NudgeStep.
func (g *Game) NudgeLeadAnt(dx, dy int) bool {
	ant := g.World.Colony.Lead()
	if ant == nil {
		return false
	}
	ant.Target.X += float64(dx) * config.NudgeStep
	ant.Target.Y += float64(dy) * config.NudgeStep
	return true
}

// EnemyAt returns the index of the first enemy whose collision box holds
// (x, y).
func (g *Game) EnemyAt(x, y float64) (int, bool) {
	p := component.Position{X: x, Y: y}
	for i, e := range g.World.Enemies {
		if system.Colliding(p, e.Pos) {
			return i, true
		}
	}
	return -1, false
}

// SetTargetEnemy sends every ant after enemy i.
func (g *Game) SetTargetEnemy(i int) bool {
	if i < 0 || i >= len(g.World.Enemies) {
		return false
	}
	enemy := g.World.Enemies[i]
	for _, ant := range g.World.Colony.Ants() {
		ant.Target = enemy.Pos
		ant.TargetEnemy = enemy.ID
	}
	return true
}

// Click applies a pointer press in arena coordinates: an enemy under the
// pointer becomes everyone's target, otherwise the lead ant walks there.
func (g *Game) Click(x, y float64) {
	if i, ok := g.EnemyAt(x, y); ok {
		g.SetTargetEnemy(i)
		return
	}
	g.SetAntTarget(0, x, y)
}
