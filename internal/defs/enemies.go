// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for one enemy rarity.
type EnemyDefinition struct {
	Rarity  Rarity  `json:"rarity"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"`
	Damage  float64 `json:"damage"`
	Coins   int     `json:"coins"`
	Visuals Visuals `json:"visuals"`
}

// BossSize is the size class of a boss.
type BossSize string

const (
	BossSmall BossSize = "small"
	BossLarge BossSize = "large"
)

// BossDefinition overrides the stat table of a mythic enemy.
type BossDefinition struct {
	Size    BossSize
	Health  float64
	Speed   float64
	Damage  float64
	Coins   int
	Visuals Visuals
}

const enemyRadius = 8

// EnemyLibrary is the library of enemy definitions, keyed by rarity.
var EnemyLibrary = defaultEnemies()

// BossLibrary is keyed by size class. Bosses are always mythic.
var BossLibrary = map[BossSize]BossDefinition{
	BossSmall: {Size: BossSmall, Health: 500, Speed: 0.3, Damage: 40, Coins: 200, Visuals: Visuals{Color: color.RGBA{128, 0, 128, 255}, Radius: 12}},
	BossLarge: {Size: BossLarge, Health: 1000, Speed: 0.2, Damage: 80, Coins: 500, Visuals: Visuals{Color: color.RGBA{0, 0, 0, 255}, Radius: 16}},
}

func defaultEnemies() map[Rarity]EnemyDefinition {
	return map[Rarity]EnemyDefinition{
		Common:    {Rarity: Common, Health: 50, Speed: 0.5, Damage: 10, Coins: 5, Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Radius: enemyRadius}},
		Rare:      {Rarity: Rare, Health: 75, Speed: 0.7, Damage: 15, Coins: 10, Visuals: Visuals{Color: color.RGBA{255, 165, 0, 255}, Radius: enemyRadius}},
		Epic:      {Rarity: Epic, Health: 100, Speed: 0.9, Damage: 20, Coins: 20, Visuals: Visuals{Color: color.RGBA{255, 255, 0, 255}, Radius: enemyRadius}},
		Legendary: {Rarity: Legendary, Health: 150, Speed: 1.1, Damage: 30, Coins: 50, Visuals: Visuals{Color: color.RGBA{0, 255, 0, 255}, Radius: enemyRadius}},
		Mythic:    {Rarity: Mythic, Health: 250, Speed: 1.5, Damage: 50, Coins: 100, Visuals: Visuals{Color: color.RGBA{0, 0, 255, 255}, Radius: enemyRadius}},
	}
}

// EnemyDef returns the definition for r, falling back to the built-in table.
func EnemyDef(r Rarity) EnemyDefinition {
	if def, ok := EnemyLibrary[r]; ok {
		return def
	}
	return defaultEnemies()[Common]
}

// ResetEnemyDefinitions restores the built-in enemy table.
func ResetEnemyDefinitions() {
	EnemyLibrary = defaultEnemies()
}
