package outbound

import (
	"context"

	"github.com/kemo-beep/effectai/domain"
)

// GenerateCompositionRequest carries everything the generative backend needs
// for one authoring attempt. Instruction is the full system prompt built by
// the instruction builder; Prompt is the raw user text.
type GenerateCompositionRequest struct {
	Instruction string
	Prompt      string
	AspectRatio domain.AspectRatio
}

// GenerativeBackendPort is the optional LLM collaborator. Exactly one
// attempt is made per request; any error routes the caller to the
// deterministic fallback.
type GenerativeBackendPort interface {
	// Available reports whether a credential is configured. When false,
	// Generate must not be called.
	Available() bool

	Generate(ctx context.Context, req GenerateCompositionRequest) (*domain.Composition, error)
}
