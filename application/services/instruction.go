package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/domain"
)

// InstructionBuilder assembles the system prompt sent to the generative
// backend. The prose is versioned template data; which content section gets
// embedded is decided by the same classification rules the fallback path
// uses, so that decision stays testable without calling any backend.
type InstructionBuilder struct {
	sceneTypes string
	styles     string
	schemaJSON string
}

func NewInstructionBuilder(styles *config.StyleRegistry) (*InstructionBuilder, error) {
	names := make([]string, 0, len(domain.SceneTypes))
	for _, t := range domain.SceneTypes {
		names = append(names, string(t))
	}

	reflector := &jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&domain.Composition{})
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal composition schema: %w", err)
	}

	return &InstructionBuilder{
		sceneTypes: strings.Join(names, ", "),
		styles:     strings.Join(styles.Names(), ", "),
		schemaJSON: string(schemaJSON),
	}, nil
}

type InstructionParams struct {
	Prompt          string
	Style           string
	DurationSeconds float64
}

// contentSection picks the formatting instructions matching the prompt's
// classification: map and chart payloads, cohesive single-scene sequences,
// or free multi-scene storytelling.
func contentSection(prompt string) string {
	_, isSingle := DetectSingleAnimationType(prompt)
	flags := ClassifyContent(prompt)

	switch {
	case flags.Map:
		return mapSection
	case flags.Chart:
		return chartSection
	case flags.List || (flags.Sequence && !isSingle):
		return cohesiveSection
	default:
		return multiSceneSection
	}
}

// Build renders the full instruction for one request.
func (b *InstructionBuilder) Build(params InstructionParams) string {
	duration := params.DurationSeconds
	if duration <= 0 {
		duration = domain.DefaultDurationSeconds
	}
	totalFrames := domain.FrameBudget(duration)

	var output string
	if sceneType, ok := DetectSingleAnimationType(params.Prompt); ok {
		output = fmt.Sprintf(`- Create ONE masterful scene using "%s" with studio-level polish`, sceneType)
	} else {
		output = "- Craft a cohesive sequence that demonstrates professional storytelling"
	}

	stylePreference := "Choose the most cinematic and professional style"
	if params.Style != "" {
		stylePreference = fmt.Sprintf("Style preference: %q", params.Style)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, instructionHeader, b.sceneTypes, b.styles)
	sb.WriteString("\n\nCONTENT ANALYSIS & FORMATTING:\n")
	sb.WriteString(contentSection(params.Prompt))
	sb.WriteString("\n\nPROFESSIONAL OUTPUT SPECIFICATIONS:\n")
	sb.WriteString(output)
	sb.WriteString("\n\nRespond ONLY with valid JSON matching this schema:\n")
	sb.WriteString(b.schemaJSON)
	fmt.Fprintf(&sb, instructionFooter, totalFrames, duration, totalFrames, stylePreference)
	return sb.String()
}

const instructionHeader = `You are a MASTER motion graphics designer with 20+ years of experience creating award-winning animations for Fortune 500 companies, major film studios, and top-tier motion graphics marketplaces. Your work has been featured in design exhibitions and has won multiple industry awards.

Your task: Create STUDIO-QUALITY motion graphics that rival the absolute best work from professional studios. Every animation must demonstrate mastery of advanced animation principles: anticipation, follow-through, overlapping action, squash & stretch, and sophisticated easing curves.

Available scene types: %s
Available styles: %s

PROFESSIONAL DESIGNER MINDSET:
Think like a top-tier motion graphics artist. Every frame must serve the story and demonstrate technical excellence.

ADVANCED ANIMATION PRINCIPLES TO IMPLEMENT:
1. Anticipation & Follow-Through: Build tension before movement, add overshoot and settling
2. Secondary Animation: Elements move with different timing for organic feel
3. Easing Mastery: Use custom easing curves, not just basic springs
4. Visual Hierarchy: Guide the viewer's eye with strategic timing and emphasis
5. Professional Polish: Subtle details that elevate from amateur to professional`

const mapSection = `MAP VISUALIZATION: Create ONE scene using "infographic-chart" type
- Format: "Highlighted:Country1|Country2|Country3" (for emphasis) or "Country1|Country2|Country3"
- Professional map animations with smooth country reveals and highlighting
- Use sophisticated color schemes for geographic data`

const chartSection = `DATA VISUALIZATION: Create ONE scene using "infographic-chart" type
- Format: "Label1:Value1|Label2:Value2|Label3:Value3"
- Choose chart type automatically: pie for distributions, bar for comparisons, line for trends
- Professional data presentation with smooth animations and clear visual hierarchy`

const cohesiveSection = `SEQUENTIAL CONTENT: Create ONE cohesive scene showing all items in flowing sequence
- Use "checklist" type for lists, "infographic-chart" for data
- Items animate with staggered timing and professional easing
- Build narrative flow that feels like a single, polished sequence`

const multiSceneSection = `CINEMATIC STORYTELLING: Create 4-7 scenes that flow like a professional video
- Each scene builds on the previous with smooth transitions
- Use variety in animation types while maintaining visual coherence
- Create emotional arcs and visual rhythm`

const instructionFooter = `

Every scene "duration" is in frames at 30 fps and scene durations must sum to exactly %d frames.
Duration: %g seconds = %d frames total
%s

Remember: You are creating animations that will be studied by other designers. Excellence is not optional - it is mandatory.`
