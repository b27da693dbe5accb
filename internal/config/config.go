// Package config reads the preview server's settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, ":" + PORT.
	Addr string
	// FixturesDir holds *.yaml decks. Empty serves the embedded deck only.
	FixturesDir string
	// Watch reloads decks from FixturesDir as they change.
	Watch    bool
	LogLevel log.Level
}

// FromEnv reads PORT, GAMECARD_FIXTURES, GAMECARD_WATCH and LOG_LEVEL.
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Config {
	cfg := Config{
		Addr:        ":8080",
		FixturesDir: strings.TrimSpace(getenv("GAMECARD_FIXTURES")),
		Watch:       true,
		LogLevel:    log.InfoLevel,
	}
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}
	if raw := strings.TrimSpace(getenv("GAMECARD_WATCH")); raw != "" {
		if watch, err := strconv.ParseBool(raw); err == nil {
			cfg.Watch = watch
		}
	}
	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		}
	}
	if cfg.FixturesDir == "" {
		cfg.Watch = false
	}
	return cfg
}
