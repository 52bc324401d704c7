package services

import (
	"context"

	"github.com/kemo-beep/effectai/application/ports/inbound"
	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/domain"
)

// compositionGenerator orchestrates one generation request: a single attempt
// against the generative backend when one is configured, then the
// deterministic synthesizer. Backend failures are absorbed here and logged;
// the caller always receives a composition.
type compositionGenerator struct {
	logger      outbound.LoggerPort
	backend     outbound.GenerativeBackendPort
	instruction *InstructionBuilder
	synthesizer *FallbackSynthesizer
}

func NewCompositionGenerator(logger outbound.LoggerPort, backend outbound.GenerativeBackendPort,
	instruction *InstructionBuilder, synthesizer *FallbackSynthesizer) inbound.CompositionGeneratorPort {
	return &compositionGenerator{
		logger:      logger,
		backend:     backend,
		instruction: instruction,
		synthesizer: synthesizer,
	}
}

func (g *compositionGenerator) Generate(ctx context.Context, params inbound.GenerateCompositionParams) (*domain.Composition, error) {
	if g.backend != nil && g.backend.Available() {
		comp, err := g.backend.Generate(ctx, outbound.GenerateCompositionRequest{
			Instruction: g.instruction.Build(InstructionParams{
				Prompt:          params.Prompt,
				Style:           params.Style,
				DurationSeconds: params.DurationSeconds,
			}),
			Prompt:      params.Prompt,
			AspectRatio: params.AspectRatio.OrDefault(),
		})
		if err == nil {
			return comp, nil
		}
		g.logger.WarnWithFields("Generative backend failed, using deterministic fallback", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return g.synthesizer.Synthesize(params), nil
}
