package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kemo-beep/effectai/domain"
)

// DefaultStyle is applied when a request carries no style or an unknown one.
const DefaultStyle = "bold-modern"

// StylePreset bundles the palette and presentation flags the renderer reads
// for a named style.
type StylePreset struct {
	Colors     domain.ColorPalette `yaml:"colors"`
	GlowEffect bool                `yaml:"glowEffect"`
}

// styleOrder fixes the order presets are advertised to the generative
// backend, so instruction prompts stay stable between runs.
var styleOrder = []string{
	"bold-modern",
	"neon-futuristic",
	"corporate-minimal",
	"kinetic-3d",
	"gradient-flow",
	"lofi-anime",
	"elegant-classic",
	"hand-drawn",
}

var defaultPresets = map[string]StylePreset{
	"bold-modern": {
		Colors:     domain.ColorPalette{Primary: "#FF3B30", Secondary: "#FFD60A", Background: "#0A0A0A", Text: "#FFFFFF"},
		GlowEffect: false,
	},
	"neon-futuristic": {
		Colors:     domain.ColorPalette{Primary: "#00F5FF", Secondary: "#FF00E5", Background: "#05010F", Text: "#EAFBFF"},
		GlowEffect: true,
	},
	"corporate-minimal": {
		Colors:     domain.ColorPalette{Primary: "#2563EB", Secondary: "#64748B", Background: "#F8FAFC", Text: "#0F172A"},
		GlowEffect: false,
	},
	"kinetic-3d": {
		Colors:     domain.ColorPalette{Primary: "#7C3AED", Secondary: "#F59E0B", Background: "#111827", Text: "#F9FAFB"},
		GlowEffect: true,
	},
	"gradient-flow": {
		Colors:     domain.ColorPalette{Primary: "#FF6B6B", Secondary: "#4ECDC4", Background: "#1A1A2E", Text: "#FFFFFF"},
		GlowEffect: false,
	},
	"lofi-anime": {
		Colors:     domain.ColorPalette{Primary: "#F472B6", Secondary: "#A78BFA", Background: "#2D2A4A", Text: "#FDF2F8"},
		GlowEffect: false,
	},
	"elegant-classic": {
		Colors:     domain.ColorPalette{Primary: "#C9A227", Secondary: "#8B8178", Background: "#101014", Text: "#F5F1E8"},
		GlowEffect: false,
	},
	"hand-drawn": {
		Colors:     domain.ColorPalette{Primary: "#1D1D1D", Secondary: "#E63946", Background: "#FDF6E3", Text: "#111111"},
		GlowEffect: false,
	},
}

// StyleRegistry is the static lookup of style presets. It is immutable after
// construction.
type StyleRegistry struct {
	presets map[string]StylePreset
	names   []string
}

// NewStyleRegistry returns the built-in presets. When path is non-empty the
// YAML file at path is merged on top: existing presets are replaced, new
// ones appended after the built-in order.
func NewStyleRegistry(path string) (*StyleRegistry, error) {
	presets := make(map[string]StylePreset, len(defaultPresets))
	for name, preset := range defaultPresets {
		presets[name] = preset
	}
	names := append([]string(nil), styleOrder...)

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read style config: %w", err)
		}
		var overrides map[string]StylePreset
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("failed to parse style config: %w", err)
		}
		for name, preset := range overrides {
			if _, known := presets[name]; !known {
				names = append(names, name)
			}
			presets[name] = preset
		}
	}

	return &StyleRegistry{presets: presets, names: names}, nil
}

// Has reports whether name is a registered preset.
func (r *StyleRegistry) Has(name string) bool {
	_, ok := r.presets[name]
	return ok
}

// Resolve maps a requested style to a preset name and its config. Empty or
// unknown names fall back to the default preset; a known name keeps its own
// preset.
func (r *StyleRegistry) Resolve(name string) (string, StylePreset) {
	if name == "" {
		name = DefaultStyle
	}
	preset, ok := r.presets[name]
	if !ok {
		return name, r.presets[DefaultStyle]
	}
	return name, preset
}

// Names returns preset names in advertised order.
func (r *StyleRegistry) Names() []string {
	return append([]string(nil), r.names...)
}
