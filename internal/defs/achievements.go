package defs

// Metric is the monotonic counter an achievement watches.
type Metric int

const (
	MetricKills Metric = iota
	MetricTotalCoins
	MetricGameTime
)

// AchievementDefinition is a one-shot unlock: once Metric reaches Threshold the
// achievement is set and Bonus coins are paid exactly once.
type AchievementDefinition struct {
	ID        string
	Title     string
	Metric    Metric
	Threshold float64
	Bonus     int
}

// AchievementHunter is only granted by a redeem code.
const AchievementHunter = "achievementHunter"

// Achievements are checked in this order every tick.
var Achievements = []AchievementDefinition{
	{ID: "firstKill", Title: "First Blood", Metric: MetricKills, Threshold: 1, Bonus: 100},
	{ID: "centurion", Title: "Centurion", Metric: MetricKills, Threshold: 100, Bonus: 500},
	{ID: "millionaire", Title: "Millionaire", Metric: MetricTotalCoins, Threshold: 1_000_000, Bonus: 10_000},
	// Despite the name this is a survival timer, not a water check.
	{ID: "hydratedColony", Title: "Hydrated Colony", Metric: MetricGameTime, Threshold: 300, Bonus: 2000},
	{ID: "hourPlayed", Title: "Dedicated Player", Metric: MetricGameTime, Threshold: 3600, Bonus: 1000},
}
