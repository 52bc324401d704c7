package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RenderConfig points at the Remotion render lambda. The render endpoints
// are optional; deployments without a function name simply do not offer them.
type RenderConfig struct {
	FunctionName string `env:"RENDER_FUNCTION_NAME"`
	Region       string `env:"RENDER_REGION" envDefault:"us-east-1"`
	BucketName   string `env:"RENDER_BUCKET_NAME"`
}

func (c *RenderConfig) Enabled() bool {
	return c.FunctionName != ""
}

func GetRenderConfig() (*RenderConfig, error) {
	cfg := &RenderConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse render config: %w", err)
	}
	return cfg, nil
}
