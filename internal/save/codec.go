// internal/save/codec.go
package save

import (
	"encoding/json"
	"fmt"
	"math"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/defs"
)

// State is the persisted blob: resources, upgrades and progression. Entities
// and the tunnel map are not saved.
type State struct {
	Resources        component.Resources `json:"resources"`
	Upgrades         component.Upgrades  `json:"upgrades"`
	Achievements     map[string]bool     `json:"achievements"`
	Level            int                 `json:"level"`
	EnemiesKilled    int                 `json:"enemiesKilled"`
	TotalCoinsEarned int                 `json:"totalCoinsEarned"`
	GameTime         float64             `json:"gameTime"`
	Timestamp        int64               `json:"timestamp"` // unix milliseconds
}

// Default is the state of a fresh game.
func Default() State {
	p := component.NewProgress()
	return State{
		Resources:    component.DefaultResources(),
		Upgrades:     component.NewUpgrades(),
		Achievements: p.Achievements,
		Level:        p.Level,
	}
}

// Encode serializes s as JSON.
func Encode(s State) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return b, nil
}

// Decode parses a blob field by field. Missing or malformed fields keep their
// defaults, and food is raised to the loaded-food floor. Only a blob that is
// not a JSON object is an error; the returned State is then Default().
func Decode(blob []byte) (State, error) {
	s := Default()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return s, fmt.Errorf("failed to decode save: %w", err)
	}
	if raw == nil {
		return s, fmt.Errorf("failed to decode save: not a JSON object")
	}

	if fields, ok := object(raw["resources"]); ok {
		decodeInt(fields["coins"], &s.Resources.Coins, 0)
		decodeInt(fields["food"], &s.Resources.Food, 0)
		decodeFloat(fields["water"], &s.Resources.Water, 0)
		decodeInt(fields["ants"], &s.Resources.Ants, 0)
		decodeInt(fields["dirt"], &s.Resources.Dirt, 0)
	}
	if fields, ok := object(raw["upgrades"]); ok {
		for _, k := range defs.UpgradeKinds {
			lvl := s.Upgrades[k]
			decodeInt(fields[string(k)], &lvl, 0)
			s.Upgrades[k] = lvl
		}
	}
	if fields, ok := object(raw["achievements"]); ok {
		for id := range s.Achievements {
			var unlocked bool
			if json.Unmarshal(fields[id], &unlocked) == nil && unlocked {
				s.Achievements[id] = true
			}
		}
	}
	decodeInt(raw["level"], &s.Level, 1)
	decodeInt(raw["enemiesKilled"], &s.EnemiesKilled, 0)
	decodeInt(raw["totalCoinsEarned"], &s.TotalCoinsEarned, 0)
	decodeFloat(raw["gameTime"], &s.GameTime, 0)
	var ts float64
	if json.Unmarshal(raw["timestamp"], &ts) == nil {
		s.Timestamp = int64(ts)
	}

	s.Resources.Food = max(s.Resources.Food, config.MinLoadedFood)
	return s, nil
}

func object(msg json.RawMessage) (map[string]json.RawMessage, bool) {
	if msg == nil {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// decodeInt accepts any JSON number, floors it, and keeps dst when the field
// is missing, malformed or below lo.
func decodeInt(msg json.RawMessage, dst *int, lo int) {
	var f float64
	if msg == nil || json.Unmarshal(msg, &f) != nil || math.IsNaN(f) {
		return
	}
	if f >= math.MaxInt {
		*dst = math.MaxInt
		return
	}
	if n := int(math.Floor(f)); n >= lo {
		*dst = n
	}
}

func decodeFloat(msg json.RawMessage, dst *float64, lo float64) {
	var f float64
	if msg == nil || json.Unmarshal(msg, &f) != nil || f < lo {
		return
	}
	*dst = f
}
