// internal/component/enemy.go
package component

import (
	"image/color"

	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/types"
)

// BossInfo marks an enemy as a boss of a size class.
type BossInfo struct {
	Size defs.BossSize
}

// Enemy walks down the arena. Bosses are enemies with Boss set.
type Enemy struct {
	ID        types.EntityID
	Pos       Position
	Rarity    defs.Rarity
	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64
	Coins     int
	Color     color.RGBA
	Radius    float64
	Boss      *BossInfo
}

// NewEnemy builds a regular enemy of rarity r at (x, y).
func NewEnemy(id types.EntityID, r defs.Rarity, x, y float64) *Enemy {
	def := defs.EnemyDef(r)
	return &Enemy{
		ID:        id,
		Pos:       Position{X: x, Y: y},
		Rarity:    r,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Coins:     def.Coins,
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
	}
}

// NewBoss builds a mythic boss of the given size at (x, y).
func NewBoss(id types.EntityID, size defs.BossSize, x, y float64) *Enemy {
	def, ok := defs.BossLibrary[size]
	if !ok {
		def = defs.BossLibrary[defs.BossSmall]
	}
	return &Enemy{
		ID:        id,
		Pos:       Position{X: x, Y: y},
		Rarity:    defs.Mythic,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Coins:     def.Coins,
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		Boss:      &BossInfo{Size: def.Size},
	}
}

func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

func (e *Enemy) Alive() bool {
	return e.Health > 0
}

func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	r := e.Health / e.MaxHealth
	if r < 0 {
		return 0
	}
	return r
}
