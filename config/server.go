package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	Port           string `env:"PORT" envDefault:"8080"`
	WorkerPoolSize int    `env:"WORKER_POOL_SIZE" envDefault:"120"`
	StyleConfig    string `env:"STYLE_CONFIG_PATH"`
}

func GetServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg, nil
}
