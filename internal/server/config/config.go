// Package config handles configuration for the server component, including
// defaults, environment variables, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the todolist server.
//
// Fields:
//   - Address: bind address for the public HTTP endpoint.
//   - DatabaseDSN: either a PostgreSQL DSN (pgx) or a SQLite file path.
//   - JWTSecret: HMAC secret for signing JWTs (HS256). Do not use the
//     development default in prod.
//   - JWTExpires: token lifetime.
//   - LogLevel: minimal level for structured log output.
type Config struct {
	Address     string        `env:"ADDRESS"`
	DatabaseDSN string        `env:"DATABASE_DSN"`
	JWTSecret   string        `env:"JWT_SECRET"`
	JWTExpires  time.Duration `env:"JWT_EXPIRES"`
	LogLevel    string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Address = ":3000"
	c.DatabaseDSN = "todolist.db"
	c.JWTSecret = "31qaz2wsx"
	c.JWTExpires = 60 * time.Minute
	c.LogLevel = "debug"
}

// Validate reports configuration that is unusable at startup. A missing
// signing secret is fatal here rather than a per-request condition.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT secret must not be empty")
	}
	if c.Address == "" {
		return errors.New("config: address must not be empty")
	}
	if c.JWTExpires <= 0 {
		return errors.New("config: JWT expiry must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
