package domain

// SceneType identifies which renderer component plays a scene. The values
// must match the component registry on the renderer side exactly; anything
// else falls back to a plain text reveal over there.
type SceneType string

const (
	SceneTextReveal       SceneType = "text-reveal"
	SceneLogoIntro        SceneType = "logo-intro"
	SceneKineticTypo      SceneType = "kinetic-typography"
	SceneShapeMorph       SceneType = "shape-morph"
	SceneParallax         SceneType = "parallax"
	SceneSlideTransition  SceneType = "slide-transition"
	SceneBounceIn         SceneType = "bounce-in"
	SceneFadeSequence     SceneType = "fade-sequence"
	SceneLowerThird       SceneType = "lower-third"
	SceneSocialCallout    SceneType = "social-callout"
	SceneInfographicChart SceneType = "infographic-chart"
	SceneAnimatedIcon     SceneType = "animated-icon"
	SceneTransitionEffect SceneType = "transition-effect"
	SceneProductShowcase  SceneType = "product-showcase"
	SceneMemeEffect       SceneType = "meme-effect"
	SceneReactionPopup    SceneType = "reaction-popup"
	SceneNumberCounter    SceneType = "number-counter"
	SceneSpeechBubble     SceneType = "speech-bubble"
	SceneTypewriter       SceneType = "typewriter"
	SceneTimeline         SceneType = "timeline"
	SceneGlitchText       SceneType = "glitch-text"
	SceneVHSOverlay       SceneType = "vhs-overlay"
	SceneGradientWave     SceneType = "gradient-wave"
	SceneChecklist        SceneType = "checklist"
	SceneDeviceMockup     SceneType = "device-mockup"
)

// SceneTypes lists every renderer-registered scene type, in the order the
// vocabulary is advertised to the generative backend.
var SceneTypes = []SceneType{
	SceneTextReveal,
	SceneLogoIntro,
	SceneKineticTypo,
	SceneShapeMorph,
	SceneParallax,
	SceneSlideTransition,
	SceneBounceIn,
	SceneFadeSequence,
	SceneLowerThird,
	SceneSocialCallout,
	SceneInfographicChart,
	SceneAnimatedIcon,
	SceneTransitionEffect,
	SceneProductShowcase,
	SceneMemeEffect,
	SceneReactionPopup,
	SceneNumberCounter,
	SceneSpeechBubble,
	SceneTypewriter,
	SceneTimeline,
	SceneGlitchText,
	SceneVHSOverlay,
	SceneGradientWave,
	SceneChecklist,
	SceneDeviceMockup,
}

func (t SceneType) IsValid() bool {
	for _, known := range SceneTypes {
		if t == known {
			return true
		}
	}
	return false
}
