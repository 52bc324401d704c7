package dto

// GenerateCompositionRequest is the inbound generation contract. The
// "stylepreset" rule is registered at startup against the style registry, so
// unknown styles are rejected before reaching the core.
type GenerateCompositionRequest struct {
	Prompt      string  `json:"prompt" binding:"required"`
	Style       string  `json:"style" binding:"omitempty,stylepreset"`
	Duration    float64 `json:"duration" binding:"omitempty,gt=0"`
	AspectRatio string  `json:"aspectRatio" binding:"omitempty,oneof=16:9 9:16 1:1 4:5"`
}
