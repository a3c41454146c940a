package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadEnemyDefinitions reads a JSON array of enemy definitions and replaces the
// matching entries of EnemyLibrary. Tiers missing from the file keep their
// current stats.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.Health <= 0 || def.Speed < 0 || def.Damage < 0 {
			return fmt.Errorf("invalid enemy definition for %s: health, speed and damage must be non-negative", def.Rarity)
		}
	}

	for _, def := range enemyDefs {
		if def.Visuals.Radius == 0 {
			def.Visuals = EnemyDef(def.Rarity).Visuals
		}
		EnemyLibrary[def.Rarity] = def
	}

	slog.Info("loaded enemy definitions", "count", len(enemyDefs), "path", path)
	return nil
}
