package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables.
type Config struct {
	DBPath  string `env:"BARBER_DB_PATH" envDefault:"./data/barbershop.db"`
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
