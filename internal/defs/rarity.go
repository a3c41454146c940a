package defs

// Thresholds are cumulative percentages tested rarest first. They are not
// normalised: each tier is compared independently against the same roll.
type Thresholds struct {
	Mythic    int
	Legendary int
	Epic      int
	Rare      int
}

// tierCurve describes how one enemy tier threshold grows with the level shift.
type tierCurve struct {
	Base, Step, Cap int
}

var (
	enemyMythic    = tierCurve{Base: 1, Step: 2, Cap: 10}
	enemyLegendary = tierCurve{Base: 5, Step: 3, Cap: 20}
	enemyEpic      = tierCurve{Base: 20, Step: 5, Cap: 40}
	enemyRare      = tierCurve{Base: 50, Step: 5, Cap: 70}
)

// AntSpawnThresholds are fixed and do not scale with level.
var AntSpawnThresholds = Thresholds{Mythic: 1, Legendary: 5, Epic: 20, Rare: 50}

func (c tierCurve) at(shift int) int {
	return min(c.Cap, c.Base+shift*c.Step)
}

// LevelShift grows by one every ten levels.
func LevelShift(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) / 10
}

// EnemyThresholds returns the capped enemy thresholds for a level shift.
func EnemyThresholds(shift int) Thresholds {
	if shift < 0 {
		shift = 0
	}
	return Thresholds{
		Mythic:    enemyMythic.at(shift),
		Legendary: enemyLegendary.at(shift),
		Epic:      enemyEpic.at(shift),
		Rare:      enemyRare.at(shift),
	}
}

// PickEntityRarity maps a roll in [0,100) onto a tier. First match wins,
// falling through to Common.
func PickEntityRarity(t Thresholds, roll int) Rarity {
	switch {
	case roll < t.Mythic:
		return Mythic
	case roll < t.Legendary:
		return Legendary
	case roll < t.Epic:
		return Epic
	case roll < t.Rare:
		return Rare
	default:
		return Common
	}
}

// PickEnemyRarity is PickEntityRarity with the level-scaled enemy table.
func PickEnemyRarity(level, roll int) Rarity {
	return PickEntityRarity(EnemyThresholds(LevelShift(level)), roll)
}

// PickAntRarity is PickEntityRarity with the fixed ant spawn table.
func PickAntRarity(roll int) Rarity {
	return PickEntityRarity(AntSpawnThresholds, roll)
}
