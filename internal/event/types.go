// internal/event/types.go
package event

import (
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/defs"
)

const (
	EnemyKilled         EventType = "EnemyKilled"
	AntDied             EventType = "AntDied"
	AntSpawned          EventType = "AntSpawned"
	LevelUp             EventType = "LevelUp"
	AchievementUnlocked EventType = "AchievementUnlocked"
	UpgradePurchased    EventType = "UpgradePurchased"
	Message             EventType = "Message" // Data is the player-facing text
)

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	Enemy *component.Enemy
	Ant   *component.Ant
	Coins int
}

// UpgradeData is the payload of UpgradePurchased.
type UpgradeData struct {
	Kind  defs.UpgradeKind
	Level int
	Cost  int
}
