package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port                string        `env:"PORT" envDefault:"8080"`
	PensionRatesURL     string        `env:"PENSION_RATES_URL"`
	PensionRatesTimeout time.Duration `env:"PENSION_RATES_TIMEOUT" envDefault:"2s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
