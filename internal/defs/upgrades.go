package defs

import "math"

// UpgradeKind names a purchasable upgrade track.
type UpgradeKind string

const (
	AntSpeed         UpgradeKind = "antSpeed"
	AntHealth        UpgradeKind = "antHealth"
	AntDamage        UpgradeKind = "antDamage"
	ColonySize       UpgradeKind = "colonySize"
	GatherEfficiency UpgradeKind = "gatherEfficiency"
	WaterEfficiency  UpgradeKind = "waterEfficiency"
)

// UpgradeKinds is the fixed purchase order used by "buy all affordable".
var UpgradeKinds = []UpgradeKind{
	AntSpeed, AntHealth, AntDamage, ColonySize, GatherEfficiency, WaterEfficiency,
}

// Valid reports whether k is one of the six known kinds.
func (k UpgradeKind) Valid() bool {
	for _, known := range UpgradeKinds {
		if k == known {
			return true
		}
	}
	return false
}

// UpgradeCost is floor(base * growth^level), saturating at math.MaxInt.
func UpgradeCost(base, growth float64, level int) int {
	if level < 0 {
		level = 0
	}
	cost := math.Floor(base * math.Pow(growth, float64(level)))
	if math.IsNaN(cost) || cost >= math.MaxInt {
		return math.MaxInt
	}
	return int(cost)
}

// StatMultiplier is min(ceiling, growth^level).
func StatMultiplier(growth, ceiling float64, level int) float64 {
	if level <= 0 {
		return 1
	}
	return math.Min(ceiling, math.Pow(growth, float64(level)))
}
