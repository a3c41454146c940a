package defs

import "image/color"

// Specialty is the behavioural role of an ant, fixed by its rarity.
type Specialty string

const (
	Worker   Specialty = "Worker"
	Gatherer Specialty = "Gatherer"
	Warrior  Specialty = "Warrior"
	Queen    Specialty = "Queen"
	MythicSp Specialty = "Mythic"
)

// AntDefinition holds the static stats of one ant rarity.
type AntDefinition struct {
	Rarity     Rarity
	Specialty  Specialty
	Speed      float64
	Health     float64
	CoinFactor float64 // multiplier on coins earned by kills this ant lands
	Visuals    Visuals
}

// AntLibrary is indexed by Rarity.
var AntLibrary = [...]AntDefinition{
	Common:    {Rarity: Common, Specialty: Worker, Speed: 1, Health: 100, CoinFactor: 1, Visuals: Visuals{Color: color.RGBA{0, 0, 0, 255}, Radius: 5}},
	Rare:      {Rarity: Rare, Specialty: Gatherer, Speed: 1.5, Health: 150, CoinFactor: 1.5, Visuals: Visuals{Color: color.RGBA{192, 192, 192, 255}, Radius: 5}},
	Epic:      {Rarity: Epic, Specialty: Warrior, Speed: 2, Health: 200, CoinFactor: 2, Visuals: Visuals{Color: color.RGBA{138, 43, 226, 255}, Radius: 5}},
	Legendary: {Rarity: Legendary, Specialty: Queen, Speed: 2.5, Health: 300, CoinFactor: 3, Visuals: Visuals{Color: color.RGBA{255, 215, 0, 255}, Radius: 5}},
	Mythic:    {Rarity: Mythic, Specialty: MythicSp, Speed: 3, Health: 500, CoinFactor: 5, Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}, Radius: 5}},
}

// AntDef returns the definition for r, falling back to Common.
func AntDef(r Rarity) AntDefinition {
	if r < Common || r > Mythic {
		return AntLibrary[Common]
	}
	return AntLibrary[r]
}
