package domain

// FPS is the fixed frame rate every composition is authored against.
const FPS = 30

// DefaultDurationSeconds is used when a request does not specify a duration.
const DefaultDurationSeconds = 10.0

type AspectRatio string

const (
	AspectLandscape AspectRatio = "16:9"
	AspectVertical  AspectRatio = "9:16"
	AspectSquare    AspectRatio = "1:1"
	AspectPortrait  AspectRatio = "4:5"
)

func (a AspectRatio) IsValid() bool {
	switch a {
	case AspectLandscape, AspectVertical, AspectSquare, AspectPortrait:
		return true
	}
	return false
}

// OrDefault returns the aspect ratio itself when valid, 16:9 otherwise.
func (a AspectRatio) OrDefault() AspectRatio {
	if a.IsValid() {
		return a
	}
	return AspectLandscape
}

type ColorPalette struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
}

// AnimationHint carries the easing curve and intensity the renderer applies
// to a scene. Intensity is in [0,1].
type AnimationHint struct {
	Easing    string  `json:"easing"`
	Intensity float64 `json:"intensity"`
}

// Scene is one timed segment of a composition. Text is either plain copy or
// a pipe-encoded payload (map country lists, Label:Value chart pairs, list
// items) that downstream renderers parse, so its exact format matters.
type Scene struct {
	ID        string        `json:"id"`
	Type      SceneType     `json:"type"`
	Text      string        `json:"text"`
	Duration  int           `json:"duration"` // frames
	Style     string        `json:"style"`
	Colors    ColorPalette  `json:"colors"`
	Animation AnimationHint `json:"animation"`
}

// Composition is the full render-ready document: ordered scenes plus title,
// palette and aspect ratio. Scene durations sum to the total frame budget.
type Composition struct {
	Title       string       `json:"title"`
	Style       string       `json:"style"`
	Colors      ColorPalette `json:"colors"`
	Scenes      []Scene      `json:"scenes"`
	AspectRatio AspectRatio  `json:"aspectRatio"`
}

// TotalFrames returns the summed duration of all scenes.
func (c *Composition) TotalFrames() int {
	total := 0
	for _, s := range c.Scenes {
		total += s.Duration
	}
	return total
}

// FrameBudget converts a duration in seconds to frames at the fixed rate.
func FrameBudget(durationSeconds float64) int {
	if durationSeconds <= 0 {
		durationSeconds = DefaultDurationSeconds
	}
	return int(durationSeconds * FPS)
}
