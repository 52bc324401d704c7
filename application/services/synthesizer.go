package services

import (
	"fmt"
	"strings"

	"github.com/kemo-beep/effectai/application/ports/inbound"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

// FallbackSynthesizer builds a complete composition without any generative
// backend. It is total and deterministic: the same request always yields the
// same composition, and every prompt, including the empty one, produces at
// least one scene whose durations sum to the full frame budget.
type FallbackSynthesizer struct {
	styles *config.StyleRegistry
}

func NewFallbackSynthesizer(styles *config.StyleRegistry) *FallbackSynthesizer {
	return &FallbackSynthesizer{styles: styles}
}

// Synthesize resolves the request through a first-match-wins decision chain:
// explicit single scene type, map content, chart content, list or sequence
// content, then the generic 2-3 scene narrative.
func (s *FallbackSynthesizer) Synthesize(params inbound.GenerateCompositionParams) *domain.Composition {
	words := strings.Split(params.Prompt, " ")
	totalFrames := domain.FrameBudget(params.DurationSeconds)
	styleName, preset := s.styles.Resolve(params.Style)
	aspectRatio := params.AspectRatio.OrDefault()

	base := domain.Composition{
		Title:       joinWords(words, 0, 5),
		Style:       styleName,
		Colors:      preset.Colors,
		AspectRatio: aspectRatio,
	}

	singleScene := func(title string, sceneType domain.SceneType, text string) *domain.Composition {
		comp := base
		if comp.Title == "" {
			comp.Title = title
		}
		comp.Scenes = []domain.Scene{{
			ID:        "scene-1",
			Type:      sceneType,
			Text:      text,
			Duration:  totalFrames,
			Style:     styleName,
			Colors:    preset.Colors,
			Animation: domain.AnimationHint{Easing: "spring", Intensity: 0.8},
		}}
		return &comp
	}

	if sceneType, ok := DetectSingleAnimationType(params.Prompt); ok {
		return singleScene("Animation", sceneType, ExtractSingleSceneText(params.Prompt))
	}

	flags := ClassifyContent(params.Prompt)

	if flags.Map {
		return singleScene("Map Animation", domain.SceneInfographicChart, ExtractMapData(params.Prompt))
	}

	if flags.Chart {
		return singleScene("Chart Animation", domain.SceneInfographicChart, ExtractChartData(params.Prompt))
	}

	// Sequence language without a specific type also collapses into one
	// cohesive checklist scene.
	if flags.List || flags.SequenceLoose {
		return singleScene("List Animation", domain.SceneChecklist, ExtractListItems(params.Prompt))
	}

	return s.narrative(base, words, totalFrames, styleName, preset, params.Prompt)
}

// narrative is the generic multi-scene path: an opening scene, a middle
// scene when the prompt is long enough, and a closing scene that absorbs the
// remaining frames so the budget always adds up exactly.
func (s *FallbackSynthesizer) narrative(base domain.Composition, words []string, totalFrames int, styleName string, preset config.StylePreset, prompt string) *domain.Composition {
	mood := ClassifyMood(prompt)

	openingType, openingIntensity := openingScene(mood)
	sceneFrames := int(float64(totalFrames) * 0.35)

	scenes := []domain.Scene{{
		ID:        "scene-1",
		Type:      openingType,
		Text:      joinWords(words, 0, 4),
		Duration:  sceneFrames,
		Style:     styleName,
		Colors:    preset.Colors,
		Animation: domain.AnimationHint{Easing: "spring", Intensity: openingIntensity},
	}}
	frameOffset := sceneFrames

	if len(words) > 4 {
		midText := joinWords(words, 4, 8)
		if midText == "" {
			midText = joinWords(words, 0, 4)
		}
		scenes = append(scenes, domain.Scene{
			ID:        "scene-2",
			Type:      middleScene(mood),
			Text:      midText,
			Duration:  sceneFrames,
			Style:     styleName,
			Colors:    preset.Colors,
			Animation: domain.AnimationHint{Easing: "spring", Intensity: 0.8},
		})
		frameOffset += sceneFrames
	}

	closingType := domain.SceneParallax
	if mood.Energetic {
		closingType = domain.SceneSlideTransition
	}
	closingText := lastWords(words, 4)
	if closingText == "" {
		closingText = prompt
	}
	scenes = append(scenes, domain.Scene{
		ID:        fmt.Sprintf("scene-%d", len(scenes)+1),
		Type:      closingType,
		Text:      closingText,
		Duration:  totalFrames - frameOffset,
		Style:     styleName,
		Colors:    preset.Colors,
		Animation: domain.AnimationHint{Easing: "spring", Intensity: 0.7},
	})

	comp := base
	comp.Scenes = scenes
	return &comp
}

// openingScene picks the first scene type by mood priority:
// social > meme > retro > data > explainer > intro > energetic > default.
func openingScene(mood MoodFlags) (domain.SceneType, float64) {
	switch {
	case mood.Social:
		return domain.SceneSocialCallout, 0.9
	case mood.Meme:
		return domain.SceneMemeEffect, 1.0
	case mood.Retro:
		return domain.SceneVHSOverlay, 0.8
	case mood.Data:
		return domain.SceneInfographicChart, 0.8
	case mood.Explainer:
		return domain.SceneTextReveal, 0.7
	case mood.Intro:
		return domain.SceneLogoIntro, 0.8
	case mood.Energetic:
		return domain.SceneBounceIn, 0.9
	default:
		return domain.SceneKineticTypo, 0.7
	}
}

// middleScene priority: data > timeline > explainer > product > retro >
// tech > elegant > default.
func middleScene(mood MoodFlags) domain.SceneType {
	switch {
	case mood.Data:
		return domain.SceneNumberCounter
	case mood.Timeline:
		return domain.SceneTimeline
	case mood.Explainer:
		return domain.SceneChecklist
	case mood.Product:
		return domain.SceneDeviceMockup
	case mood.Retro:
		return domain.SceneGlitchText
	case mood.Tech:
		return domain.SceneTypewriter
	case mood.Elegant:
		return domain.SceneFadeSequence
	default:
		return domain.SceneGradientWave
	}
}

// joinWords joins words[from:to], clamped to the slice bounds.
func joinWords(words []string, from, to int) string {
	if from >= len(words) {
		return ""
	}
	if to > len(words) {
		to = len(words)
	}
	return strings.Join(words[from:to], " ")
}

// lastWords joins the final n words, or all of them when fewer exist.
func lastWords(words []string, n int) string {
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
