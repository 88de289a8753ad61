package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are actually set override the current values, so defaults survive.
//
// Recognized variables: ADDRESS, DATABASE_DSN, JWT_SECRET, JWT_EXPIRES
// (a Go duration, e.g. "60m"), LOG_LEVEL.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
