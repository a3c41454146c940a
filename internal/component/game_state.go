// internal/component/game_state.go
package component

import (
	"maps"

	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

// Resources are the five colony counters. Ants mirrors the colony size.
type Resources struct {
	Coins int     `json:"coins"`
	Food  int     `json:"food"`
	Water float64 `json:"water"`
	Ants  int     `json:"ants"`
	Dirt  int     `json:"dirt"`
}

// DefaultResources returns the starting counters.
func DefaultResources() Resources {
	return Resources{
		Coins: config.StartCoins,
		Food:  config.StartFood,
		Water: config.StartWater,
		Ants:  config.StartAnts,
		Dirt:  config.StartDirt,
	}
}

// Upgrades maps each kind to its level.
type Upgrades map[defs.UpgradeKind]int

// NewUpgrades returns every kind at level 0.
func NewUpgrades() Upgrades {
	u := make(Upgrades, len(defs.UpgradeKinds))
	for _, k := range defs.UpgradeKinds {
		u[k] = 0
	}
	return u
}

// Level returns the level of k, 0 when unknown.
func (u Upgrades) Level(k defs.UpgradeKind) int {
	return u[k]
}

// Clone returns an independent copy.
func (u Upgrades) Clone() Upgrades {
	return maps.Clone(u)
}

// Progress holds the monotonic progression counters.
type Progress struct {
	Level            int
	EnemiesKilled    int
	TotalCoinsEarned int
	GameTime         float64
	Achievements     map[string]bool
}

// NewProgress returns level 1 with nothing unlocked.
func NewProgress() Progress {
	p := Progress{Level: 1, Achievements: make(map[string]bool)}
	for _, a := range defs.Achievements {
		p.Achievements[a.ID] = false
	}
	p.Achievements[defs.AchievementHunter] = false
	return p
}

// Metric returns the counter watched by an achievement.
func (p *Progress) Metric(m defs.Metric) float64 {
	switch m {
	case defs.MetricKills:
		return float64(p.EnemiesKilled)
	case defs.MetricTotalCoins:
		return float64(p.TotalCoinsEarned)
	case defs.MetricGameTime:
		return p.GameTime
	}
	return 0
}
