// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the planner settings. Every field can be set through a
// QUOTA_-prefixed environment variable or a .env file.
type Config struct {
	// TotalTarget overrides the seed's company-wide annual target, in base
	// units. Zero keeps the seed's total.
	TotalTarget int64  `env:"TOTAL_TARGET" envDefault:"0"`
	SeedFile    string `env:"SEED_FILE"`
	// RandSeed seeds the auto-split jitter; 0 picks a time-based seed.
	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`

	Locale         string `env:"LOCALE" envDefault:"en-IN"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"₹"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
	LogFile   string `env:"LOG_FILE"`
}

const envPrefix = "QUOTA_"

// Load reads .env files that exist and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.TotalTarget < 0 {
		return nil, fmt.Errorf("%sTOTAL_TARGET must not be negative", envPrefix)
	}
	return cfg, nil
}
