// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// Rarity is the tier shared by ants and enemies. Higher is rarer.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
	Mythic
)

// Rarities lists every tier from most to least common.
var Rarities = []Rarity{Common, Rare, Epic, Legendary, Mythic}

var rarityNames = [...]string{"common", "rare", "epic", "legendary", "mythic"}

func (r Rarity) String() string {
	if r < Common || r > Mythic {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity accepts the lower-case names used in saves and JSON files.
func ParseRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}
