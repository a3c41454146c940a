package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are the runtime toggles of a session. Unlike the constants above
// they can be changed per run through the environment or a .env file.
type Settings struct {
	SoundEnabled     bool
	ParticlesEnabled bool
	AutoSave         bool

	Seed        int64
	SaveBackend string // "file" or "sqlite"
	SavePath    string // directory for "file", database file (or its directory) for "sqlite"
	SaveSlot    string
	FontPath    string // empty means the built-in bitmap font
	LogLevel    slog.Level
}

const envPrefix = "ANTS_"

// DefaultSettings mirrors a fresh install.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:     true,
		ParticlesEnabled: true,
		AutoSave:         true,
		SaveBackend:      "file",
		SavePath:         "saves",
		SaveSlot:         "antColonySave",
		LogLevel:         slog.LevelInfo,
	}
}

// LoadSettings reads the given .env files (missing files are ignored) into the
// process environment and then builds Settings from ANTS_* variables.
// Values that fail to parse keep their defaults.
func LoadSettings(paths ...string) (Settings, error) {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return SettingsFromEnv(os.LookupEnv), nil
}

// SettingsFromEnv builds Settings from a lookup function so tests can feed a map.
func SettingsFromEnv(lookup func(string) (string, bool)) Settings {
	s := DefaultSettings()

	boolVar := func(name string, dst *bool) {
		if v, ok := lookup(envPrefix + name); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				*dst = b
			}
		}
	}
	boolVar("SOUND", &s.SoundEnabled)
	boolVar("PARTICLES", &s.ParticlesEnabled)
	boolVar("AUTOSAVE", &s.AutoSave)

	if v, ok := lookup(envPrefix + "SEED"); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			s.Seed = n
		}
	}
	if v, ok := lookup(envPrefix + "SAVE_BACKEND"); ok {
		switch b := strings.ToLower(strings.TrimSpace(v)); b {
		case "file", "sqlite":
			s.SaveBackend = b
		}
	}
	if v, ok := lookup(envPrefix + "SAVE_PATH"); ok && strings.TrimSpace(v) != "" {
		s.SavePath = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "SAVE_SLOT"); ok && strings.TrimSpace(v) != "" {
		s.SaveSlot = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "FONT"); ok {
		s.FontPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			s.LogLevel = lvl
		}
	}
	return s
}
