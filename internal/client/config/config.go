// Package config handles configuration for the CLI client component.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/avolkovs/todolist/internal/flagx"
)

// Config holds runtime settings for the todolist CLI.
//
// Fields:
//   - ServerAddress: base URL of the backend HTTP endpoint.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerAddress  string        `env:"SERVER_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddress = "http://localhost:3000"
	c.RequestTimeout = 5 * time.Second
}

func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   server base URL (e.g., "http://localhost:3000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddress, "a", config.ServerAddress, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
