package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-3-pro-preview"`
	BaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether a generative backend credential is configured.
// When it is not, the deterministic path handles every request.
func (c *GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}

func GetGeminiConfig() (*GeminiConfig, error) {
	cfg := &GeminiConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gemini config: %w", err)
	}
	return cfg, nil
}
