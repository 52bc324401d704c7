package outbound

import (
	"context"

	"github.com/kemo-beep/effectai/domain"
)

type StartRenderParams struct {
	CompositionID string
	InputProps    domain.Composition
}

type StartRenderResult struct {
	RenderID   string
	BucketName string
}

// RenderProgress mirrors the renderer lambda's status payload: exactly one
// of the three shapes, discriminated by Type ("error", "done", "progress").
type RenderProgress struct {
	Type     string  `json:"type"`
	Message  string  `json:"message,omitempty"`
	URL      string  `json:"url,omitempty"`
	Size     int64   `json:"size,omitempty"`
	Progress float64 `json:"progress,omitempty"`
}

// RenderServicePort submits render jobs to the external rendering service
// and polls their progress.
type RenderServicePort interface {
	StartRender(ctx context.Context, params StartRenderParams) (*StartRenderResult, error)
	GetProgress(ctx context.Context, renderID, bucketName string) (*RenderProgress, error)
}
