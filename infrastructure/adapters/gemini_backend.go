package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiBackend is the optional generative collaborator. One attempt per
// request, bounded by the configured timeout; every failure mode surfaces as
// an error the orchestrator absorbs into the deterministic fallback.
type geminiBackend struct {
	fetcher      ContentFetcher
	geminiConfig *config.GeminiConfig
	workerPool   outbound.TaskDispatcher
	logger       outbound.LoggerPort
}

func NewGeminiBackend(fetcher ContentFetcher, geminiConfig *config.GeminiConfig,
	workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) outbound.GenerativeBackendPort {
	return &geminiBackend{
		fetcher:      fetcher,
		geminiConfig: geminiConfig,
		workerPool:   workerPool,
		logger:       logger,
	}
}

func (b *geminiBackend) Available() bool {
	return b.geminiConfig.Enabled()
}

func (b *geminiBackend) Generate(ctx context.Context, req outbound.GenerateCompositionRequest) (*domain.Composition, error) {
	if !b.Available() {
		return nil, fmt.Errorf("gemini backend is not configured")
	}

	newCtx, cancel := context.WithTimeout(ctx, b.geminiConfig.Timeout)
	defer cancel()

	httpReq, err := b.createRequest(newCtx, req)
	if err != nil {
		b.logger.Error(err, "Failed to create gemini HTTP request")
		return nil, err
	}

	type fetchResult struct {
		payload []byte
		err     error
	}
	resCh := make(chan fetchResult, 1)

	err = b.workerPool.Submit(func() {
		payload, fetchErr := b.fetcher.FetchContent(httpReq)
		resCh <- fetchResult{payload: payload, err: fetchErr}
	})
	if err != nil {
		b.logger.Error(err, "Failed to submit gemini call to worker pool")
		return nil, err
	}

	select {
	case <-newCtx.Done():
		return nil, newCtx.Err()
	case res := <-resCh:
		if res.err != nil {
			return nil, res.err
		}
		return b.parseComposition(res.payload, req.AspectRatio)
	}
}

func (b *geminiBackend) createRequest(ctx context.Context, req outbound.GenerateCompositionRequest) (*http.Request, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: req.Instruction},
				{Text: "User prompt: " + req.Prompt},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.8,
			MaxOutputTokens: 3072,
			TopP:            0.95,
			TopK:            40,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(b.geminiConfig.BaseURL, "/"), b.geminiConfig.Model, b.geminiConfig.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

// parseComposition digs the composition JSON out of the model's text reply,
// tolerating prose around the JSON object, and forces the aspect ratio to
// the caller-requested value.
func (b *geminiBackend) parseComposition(payload []byte, aspectRatio domain.AspectRatio) (*domain.Composition, error) {
	var res geminiResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini response: %w", err)
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response contains no candidates")
	}

	text := res.Candidates[0].Content.Parts[0].Text
	raw, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in gemini response text")
	}

	var comp domain.Composition
	if err := json.Unmarshal([]byte(raw), &comp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal composition: %w", err)
	}

	if comp.Title == "" || len(comp.Scenes) == 0 {
		return nil, fmt.Errorf("gemini composition is missing required fields")
	}

	comp.AspectRatio = aspectRatio.OrDefault()

	return &comp, nil
}

// extractJSONObject returns the first balanced {...} block in text, skipping
// braces inside JSON strings.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
