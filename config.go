package deckui

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings a Controller is constructed with.
type Config struct {
	// SandboxMode suppresses every drag mutation and change signal. Used for
	// static previews and snapshots.
	SandboxMode bool `env:"DECKUI_SANDBOX_MODE" yaml:"sandbox_mode"`
	// FirstID is the first value GenID returns.
	FirstID int `env:"DECKUI_FIRST_ID" envDefault:"1" yaml:"first_id"`
	// FirstZIndex is the first z-index MoveCard stamps.
	FirstZIndex int `env:"DECKUI_FIRST_Z_INDEX" envDefault:"1" yaml:"first_z_index"`
	// Debug enables invariant checks after each mutation and logging to
	// stderr.
	Debug bool `env:"DECKUI_DEBUG" yaml:"debug"`
}

// DefaultConfig returns the configuration used by NewController when no
// overrides are given.
func DefaultConfig() Config {
	return Config{FirstID: 1, FirstZIndex: 1}
}

// ConfigFromEnv loads configuration from DECKUI_* environment variables.
// Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
