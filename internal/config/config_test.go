package config

import (
	"testing"

	"github.com/charmbracelet/log"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg := fromLookup(env(nil))
	if cfg.Addr != ":8080" {
		t.Errorf("Addr %q, want :8080", cfg.Addr)
	}
	if cfg.FixturesDir != "" {
		t.Errorf("FixturesDir %q, want empty", cfg.FixturesDir)
	}
	if cfg.Watch {
		t.Error("Watch should be off without a fixtures dir")
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Errorf("LogLevel %v, want info", cfg.LogLevel)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg := fromLookup(env(map[string]string{
		"PORT":              " 9090 ",
		"GAMECARD_FIXTURES": "./decks",
		"LOG_LEVEL":         "debug",
	}))
	if cfg.Addr != ":9090" {
		t.Errorf("Addr %q, want :9090", cfg.Addr)
	}
	if cfg.FixturesDir != "./decks" {
		t.Errorf("FixturesDir %q, want ./decks", cfg.FixturesDir)
	}
	if !cfg.Watch {
		t.Error("Watch should default on with a fixtures dir")
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Errorf("LogLevel %v, want debug", cfg.LogLevel)
	}
}

func TestFromLookup_WatchDisabled(t *testing.T) {
	cfg := fromLookup(env(map[string]string{
		"GAMECARD_FIXTURES": "./decks",
		"GAMECARD_WATCH":    "false",
		"LOG_LEVEL":         "nonsense",
	}))
	if cfg.Watch {
		t.Error("Watch should be off")
	}
	if cfg.LogLevel != log.InfoLevel {
		t.Errorf("invalid LOG_LEVEL should keep info, got %v", cfg.LogLevel)
	}
}
