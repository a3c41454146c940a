package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestSettingsFromEnv_Defaults(t *testing.T) {
	s := SettingsFromEnv(mapLookup(nil))
	if s != DefaultSettings() {
		t.Fatalf("empty env should give defaults, got %+v", s)
	}
	if !s.AutoSave || !s.ParticlesEnabled || !s.SoundEnabled {
		t.Fatalf("toggles should default on: %+v", s)
	}
	if s.SaveSlot != "antColonySave" {
		t.Fatalf("SaveSlot = %q", s.SaveSlot)
	}
}

func TestSettingsFromEnv_Overrides(t *testing.T) {
	s := SettingsFromEnv(mapLookup(map[string]string{
		"ANTS_AUTOSAVE":     "false",
		"ANTS_PARTICLES":    "0",
		"ANTS_SEED":         " 42 ",
		"ANTS_SAVE_BACKEND": "SQLite",
		"ANTS_SAVE_PATH":    "/tmp/x.db",
		"ANTS_SAVE_SLOT":    "slot2",
		"ANTS_LOG_LEVEL":    "debug",
	}))
	if s.AutoSave || s.ParticlesEnabled {
		t.Fatalf("toggles not overridden: %+v", s)
	}
	if s.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", s.Seed)
	}
	if s.SaveBackend != "sqlite" || s.SavePath != "/tmp/x.db" || s.SaveSlot != "slot2" {
		t.Fatalf("save settings wrong: %+v", s)
	}
	if s.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v", s.LogLevel)
	}
}

func TestSettingsFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	s := SettingsFromEnv(mapLookup(map[string]string{
		"ANTS_AUTOSAVE":     "maybe",
		"ANTS_SEED":         "abc",
		"ANTS_SAVE_BACKEND": "postgres",
		"ANTS_SAVE_PATH":    "   ",
		"ANTS_LOG_LEVEL":    "loud",
	}))
	if s != DefaultSettings() {
		t.Fatalf("invalid values should keep defaults, got %+v", s)
	}
}

func TestLoadSettings_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ANTS_SEED_TEST_ONLY=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANTS_SEED", "7")
	s, err := LoadSettings(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Seed != 7 {
		t.Fatalf("Seed = %d, want 7", s.Seed)
	}
	if os.Getenv("ANTS_SEED_TEST_ONLY") != "1" {
		t.Fatal(".env values should be loaded into the environment")
	}
	os.Unsetenv("ANTS_SEED_TEST_ONLY")
}
