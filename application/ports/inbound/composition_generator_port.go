package inbound

import (
	"context"

	"github.com/kemo-beep/effectai/domain"
)

// GenerateCompositionParams is the validated inbound request. Duration is in
// seconds; zero means the default. Style and AspectRatio may be empty.
type GenerateCompositionParams struct {
	Prompt          string
	Style           string
	DurationSeconds float64
	AspectRatio     domain.AspectRatio
}

type CompositionGeneratorPort interface {
	Generate(ctx context.Context, params GenerateCompositionParams) (*domain.Composition, error)
}
