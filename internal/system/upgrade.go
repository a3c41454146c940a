// internal/system/upgrade.go
package system

import (
	"fmt"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
)

// UpgradeSystem prices and buys upgrades. Every purchase recomputes the colony.
type UpgradeSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewUpgradeSystem(world *entity.World, eventDispatcher *event.Dispatcher) *UpgradeSystem {
	return &UpgradeSystem{world: world, eventDispatcher: eventDispatcher}
}

// Cost is the price of the next level of k.
func (s *UpgradeSystem) Cost(k defs.UpgradeKind) int {
	return defs.UpgradeCost(config.UpgradeBaseCost, config.UpgradeCostGrowth, s.world.Upgrades.Level(k))
}

// Purchase buys one level of k if affordable. It reports the cost and whether
// the purchase happened.
func (s *UpgradeSystem) Purchase(k defs.UpgradeKind) (int, bool) {
	if !k.Valid() {
		return 0, false
	}
	cost := s.Cost(k)
	if s.world.Resources.Coins < cost {
		return cost, false
	}
	s.world.Resources.Coins -= cost
	s.Grant(k, 1)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UpgradePurchased,
		Data: event.UpgradeData{Kind: k, Level: s.world.Upgrades.Level(k), Cost: cost},
	})
	s.eventDispatcher.Message(fmt.Sprintf("%s upgraded to level %d!", k, s.world.Upgrades.Level(k)))
	return cost, true
}

// PurchaseAffordable walks the kinds once in fixed order, buying one level of
// each that is affordable at that point. It returns the kinds bought.
func (s *UpgradeSystem) PurchaseAffordable() []defs.UpgradeKind {
	var bought []defs.UpgradeKind
	for _, k := range defs.UpgradeKinds {
		if _, ok := s.Purchase(k); ok {
			bought = append(bought, k)
		}
	}
	return bought
}

// Grant raises k by n levels for free and recomputes the colony.
func (s *UpgradeSystem) Grant(k defs.UpgradeKind, n int) {
	if n <= 0 {
		return
	}
	s.world.Upgrades[k] += n
	s.world.RecomputeAnts()
}
