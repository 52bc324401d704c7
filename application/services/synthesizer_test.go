package services

import (
	"reflect"
	"testing"

	"github.com/kemo-beep/effectai/application/ports/inbound"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

func newTestSynthesizer(t *testing.T) *FallbackSynthesizer {
	t.Helper()
	styles, err := config.NewStyleRegistry("")
	if err != nil {
		t.Fatal("Failed to build style registry:", err)
	}
	return NewFallbackSynthesizer(styles)
}

func TestSynthesizeFrameSumInvariant(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	prompts := []string{
		"",
		"single counter animation",
		"a map of europe",
		"pie chart of diet: protein carbs fats",
		"grocery shopping list",
		"welcome aboard",
		"the quick brown fox jumps over the lazy dog",
		"flash sale discount deals this weekend only friday",
	}
	durations := []float64{0, 5, 10, 15, 30}

	for _, prompt := range prompts {
		for _, duration := range durations {
			comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{
				Prompt:          prompt,
				DurationSeconds: duration,
			})

			if len(comp.Scenes) == 0 {
				t.Fatalf("prompt %q duration %v: composition has no scenes", prompt, duration)
			}

			want := domain.FrameBudget(duration)
			if got := comp.TotalFrames(); got != want {
				t.Errorf("prompt %q duration %v: scene durations sum to %d, want %d", prompt, duration, got, want)
			}
		}
	}
}

func TestSynthesizeSingleCounterScene(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{Prompt: "single counter animation"})

	if len(comp.Scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(comp.Scenes))
	}
	scene := comp.Scenes[0]
	if scene.Type != domain.SceneNumberCounter {
		t.Errorf("scene type = %q, want %q", scene.Type, domain.SceneNumberCounter)
	}
	if scene.Duration != 300 {
		t.Errorf("scene duration = %d, want full default budget 300", scene.Duration)
	}
	if scene.Text != "single" {
		t.Errorf("scene text = %q, want residual prompt text", scene.Text)
	}
}

func TestSynthesizeDietChart(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{Prompt: "pie chart of diet: protein carbs fats"})

	if len(comp.Scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(comp.Scenes))
	}
	scene := comp.Scenes[0]
	if scene.Type != domain.SceneInfographicChart {
		t.Errorf("scene type = %q, want %q", scene.Type, domain.SceneInfographicChart)
	}
	if scene.Text != "Protein:30|Carbs:40|Fats:20|Fiber:10" {
		t.Errorf("scene text = %q, want diet dataset", scene.Text)
	}
}

func TestSynthesizeGroceryChecklist(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{Prompt: "grocery shopping list"})

	if len(comp.Scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(comp.Scenes))
	}
	scene := comp.Scenes[0]
	if scene.Type != domain.SceneChecklist {
		t.Errorf("scene type = %q, want %q", scene.Type, domain.SceneChecklist)
	}
	if scene.Text != "Milk|Bread|Eggs|Cheese|Fruits|Vegetables|Meat|Rice" {
		t.Errorf("scene text = %q, want grocery list", scene.Text)
	}
}

func TestSynthesizeMapHighlight(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{
		Prompt: "Show me a map highlighting France with Germany and Italy",
	})

	if len(comp.Scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(comp.Scenes))
	}
	scene := comp.Scenes[0]
	if scene.Type != domain.SceneInfographicChart {
		t.Errorf("scene type = %q, want %q", scene.Type, domain.SceneInfographicChart)
	}
	if scene.Text != "Highlighted:France|Germany|Italy" {
		t.Errorf("scene text = %q, want highlighted France payload", scene.Text)
	}
	if comp.Title != "Show me a map highlighting" {
		t.Errorf("title = %q, want first five prompt words", comp.Title)
	}
}

func TestSynthesizeNarrativeThreeScenes(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{
		Prompt:          "the quick brown fox jumps over the lazy dog",
		DurationSeconds: 10,
	})

	if len(comp.Scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(comp.Scenes))
	}

	wantTypes := []domain.SceneType{domain.SceneKineticTypo, domain.SceneGradientWave, domain.SceneParallax}
	wantDurations := []int{105, 105, 90} // 35% + 35% + remainder of 300
	wantTexts := []string{"the quick brown fox", "jumps over the lazy", "over the lazy dog"}

	for i, scene := range comp.Scenes {
		if scene.Type != wantTypes[i] {
			t.Errorf("scene %d type = %q, want %q", i, scene.Type, wantTypes[i])
		}
		if scene.Duration != wantDurations[i] {
			t.Errorf("scene %d duration = %d, want %d", i, scene.Duration, wantDurations[i])
		}
		if scene.Text != wantTexts[i] {
			t.Errorf("scene %d text = %q, want %q", i, scene.Text, wantTexts[i])
		}
	}
}

func TestSynthesizeShortNarrativeSkipsMiddleScene(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{Prompt: "welcome aboard"})

	if len(comp.Scenes) != 2 {
		t.Fatalf("expected 2 scenes for a short prompt, got %d", len(comp.Scenes))
	}
	if comp.Scenes[0].Type != domain.SceneLogoIntro {
		t.Errorf("opening type = %q, want logo-intro for an intro prompt", comp.Scenes[0].Type)
	}
	if comp.Scenes[1].Type != domain.SceneParallax {
		t.Errorf("closing type = %q, want parallax", comp.Scenes[1].Type)
	}
}

func TestSynthesizeEnergeticClosing(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{
		Prompt: "flash sale discount deals this weekend only friday",
	})

	if len(comp.Scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(comp.Scenes))
	}
	if comp.Scenes[0].Type != domain.SceneBounceIn {
		t.Errorf("opening type = %q, want bounce-in", comp.Scenes[0].Type)
	}
	if last := comp.Scenes[len(comp.Scenes)-1]; last.Type != domain.SceneSlideTransition {
		t.Errorf("closing type = %q, want slide-transition for energetic prompts", last.Type)
	}
}

func TestSynthesizeUnknownStyleFallsBackToDefaultPalette(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	comp := synthesizer.Synthesize(inbound.GenerateCompositionParams{
		Prompt: "welcome aboard",
		Style:  "vaporwave",
	})

	if comp.Style != "vaporwave" {
		t.Errorf("style = %q, want requested style kept", comp.Style)
	}
	styles, err := config.NewStyleRegistry("")
	if err != nil {
		t.Fatal("Failed to build style registry:", err)
	}
	_, preset := styles.Resolve(config.DefaultStyle)
	if comp.Colors != preset.Colors {
		t.Errorf("colors = %+v, want default preset palette", comp.Colors)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	synthesizer := newTestSynthesizer(t)

	params := inbound.GenerateCompositionParams{
		Prompt:          "introducing our new productivity app for busy teams",
		Style:           "neon-futuristic",
		DurationSeconds: 15,
		AspectRatio:     domain.AspectVertical,
	}

	first := synthesizer.Synthesize(params)
	second := synthesizer.Synthesize(params)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs with identical inputs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
