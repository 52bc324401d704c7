package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kemo-beep/effectai/domain"
)

// Prompt classification is pure and total: every function here returns an
// answer for every input, including the empty string. Precedence between
// matches is resolved by the synthesizer, not here.

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Explicit "create a single <type> scene" requests, checked before the
	// keyword table.
	explicitSingleRe        = regexp.MustCompile(`(?i)^(create|make|generate|show|display|animate|i want|i need)\s+(a|an|the)?\s*(single|one|just)\s+(scene|animation|effect)`)
	explicitSingleExtractRe = regexp.MustCompile(`(?i)(?:single|one|just)\s+(?:scene|animation|effect)?\s+([a-z\s-]+?)(?:\s+animation|\s+effect|\s+scene|$)`)
	explicitCounterRe       = regexp.MustCompile(`(?i)counter|count`)
	explicitLogoRe          = regexp.MustCompile(`(?i)logo`)
	explicitRevealRe        = regexp.MustCompile(`(?i)text\s+reveal|reveal`)

	// Prompts that open with a generic superlative ("amazing animation")
	// stay multi-scene even when a keyword would match.
	generalAnimationOpenerRe = regexp.MustCompile(`(?i)^(amazing|awesome|cool|great|beautiful|stunning|epic|incredible|fantastic|wonderful|nice|good|best|premium|professional|high.?quality)\s+(animation|motion|graphic|video|effect|scene)`)
	generalTermsRe           = regexp.MustCompile(`(?i)amazing|awesome|cool|great|beautiful|stunning|epic|incredible|fantastic|wonderful|nice|good|best|premium|professional`)
	singleCueRe              = regexp.MustCompile(`(?i)single|one\s+scene|just\s+(a|an|the)?\s*(scene|animation|effect)`)
	directRequestRe          = regexp.MustCompile(`(?i)^(create|make|generate|show|display|animate|i want|i need)\s+(a|an|the)?\s*[^.]*\s*(animation|effect|scene|video)$`)
)

// animationKeyword maps one trigger phrase to a scene type. The table is
// ordered; ties in phrase length keep this order after the longest-first
// sort, so "text counter" is tried before "counter" shadows it.
type animationKeyword struct {
	phrase    string
	sceneType domain.SceneType

	wordRe    *regexp.Regexp // phrase on a word boundary
	patternRe *regexp.Regexp // phrase followed by animation/effect/scene/video
}

var animationKeywords = buildAnimationKeywords()

func buildAnimationKeywords() []animationKeyword {
	entries := []struct {
		phrase    string
		sceneType domain.SceneType
	}{
		{"map animation", domain.SceneInfographicChart},
		{"map", domain.SceneInfographicChart},
		{"geographic", domain.SceneInfographicChart},
		{"country map", domain.SceneInfographicChart},
		{"world map", domain.SceneInfographicChart},
		{"pie chart", domain.SceneInfographicChart},
		{"bar chart", domain.SceneInfographicChart},
		{"bar graph", domain.SceneInfographicChart},
		{"line chart", domain.SceneInfographicChart},
		{"line graph", domain.SceneInfographicChart},
		{"donut chart", domain.SceneInfographicChart},
		{"infographic chart", domain.SceneInfographicChart},
		{"infographic", domain.SceneInfographicChart},
		{"chart", domain.SceneInfographicChart},
		{"graph", domain.SceneInfographicChart},
		{"data visualization", domain.SceneInfographicChart},
		{"visualization", domain.SceneInfographicChart},
		{"text counter", domain.SceneNumberCounter},
		{"number counter", domain.SceneNumberCounter},
		{"counter animation", domain.SceneNumberCounter},
		{"counter", domain.SceneNumberCounter},
		{"count", domain.SceneNumberCounter},
		{"logo intro", domain.SceneLogoIntro},
		{"logo", domain.SceneLogoIntro},
		{"text reveal", domain.SceneTextReveal},
		{"reveal", domain.SceneTextReveal},
		{"kinetic typography", domain.SceneKineticTypo},
		{"kinetic", domain.SceneKineticTypo},
		{"bounce in", domain.SceneBounceIn},
		{"bounce", domain.SceneBounceIn},
		{"fade sequence", domain.SceneFadeSequence},
		{"fade", domain.SceneFadeSequence},
		{"shape morph", domain.SceneShapeMorph},
		{"morph", domain.SceneShapeMorph},
		{"parallax", domain.SceneParallax},
		{"slide transition", domain.SceneSlideTransition},
		{"slide", domain.SceneSlideTransition},
		{"lower third", domain.SceneLowerThird},
		{"social callout", domain.SceneSocialCallout},
		{"callout", domain.SceneSocialCallout},
		{"animated icon", domain.SceneAnimatedIcon},
		{"icon", domain.SceneAnimatedIcon},
		{"transition effect", domain.SceneTransitionEffect},
		{"transition", domain.SceneTransitionEffect},
		{"product showcase", domain.SceneProductShowcase},
		{"product", domain.SceneProductShowcase},
		{"meme effect", domain.SceneMemeEffect},
		{"meme", domain.SceneMemeEffect},
		{"reaction popup", domain.SceneReactionPopup},
		{"reaction", domain.SceneReactionPopup},
		{"speech bubble", domain.SceneSpeechBubble},
		{"bubble", domain.SceneSpeechBubble},
		{"typewriter", domain.SceneTypewriter},
		{"timeline", domain.SceneTimeline},
		{"glitch text", domain.SceneGlitchText},
		{"glitch", domain.SceneGlitchText},
		{"vhs overlay", domain.SceneVHSOverlay},
		{"vhs", domain.SceneVHSOverlay},
		{"gradient wave", domain.SceneGradientWave},
		{"wave", domain.SceneGradientWave},
		{"checklist", domain.SceneChecklist},
		{"device mockup", domain.SceneDeviceMockup},
		{"mockup", domain.SceneDeviceMockup},
	}

	keywords := make([]animationKeyword, 0, len(entries))
	for _, e := range entries {
		phrasePattern := strings.ReplaceAll(e.phrase, " ", `\s+`)
		keywords = append(keywords, animationKeyword{
			phrase:    e.phrase,
			sceneType: e.sceneType,
			wordRe:    regexp.MustCompile(`(?i)\b` + phrasePattern + `\b`),
			patternRe: regexp.MustCompile(`(?i)\b` + phrasePattern + `\s+(animation|effect|scene|video)\b`),
		})
	}

	// Longest phrase first so multi-word phrases win over their substrings.
	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i].phrase) > len(keywords[j].phrase)
	})

	return keywords
}

// DetectSingleAnimationType decides whether the prompt unambiguously asks
// for exactly one scene of a specific type. The second return is false when
// the prompt should go through the multi-scene or cohesive-scene logic
// instead.
func DetectSingleAnimationType(prompt string) (domain.SceneType, bool) {
	promptLower := strings.ToLower(strings.TrimSpace(prompt))

	// Explicit "single/one/just <type> scene" phrasing carries its own
	// narrow type mapping.
	if explicitSingleRe.MatchString(prompt) {
		if m := explicitSingleExtractRe.FindStringSubmatch(promptLower); m != nil {
			requested := strings.TrimSpace(m[1])
			switch {
			case explicitCounterRe.MatchString(requested):
				return domain.SceneNumberCounter, true
			case explicitLogoRe.MatchString(requested):
				return domain.SceneLogoIntro, true
			case explicitRevealRe.MatchString(requested):
				return domain.SceneTextReveal, true
			}
		}
	}

	// Enthusiastic generic requests ("amazing animation about ...") always
	// get the multi-scene treatment.
	if generalAnimationOpenerRe.MatchString(prompt) {
		return "", false
	}

	wordCount := len(whitespaceRe.Split(promptLower, -1))
	isShortPrompt := wordCount <= 8
	hasSingleCue := singleCueRe.MatchString(promptLower)
	hasGeneralTerms := generalTermsRe.MatchString(promptLower)
	isDirectRequest := directRequestRe.MatchString(prompt)

	for _, kw := range animationKeywords {
		if !kw.wordRe.MatchString(promptLower) {
			continue
		}
		if hasGeneralTerms && !hasSingleCue {
			continue
		}
		if isShortPrompt && kw.patternRe.MatchString(promptLower) && !hasGeneralTerms {
			return kw.sceneType, true
		}
		if hasSingleCue || (isDirectRequest && !hasGeneralTerms) {
			return kw.sceneType, true
		}
	}

	return "", false
}

var (
	mapRe      = regexp.MustCompile(`(?i)map|geographic|country|countries|world\s+map|europe|asia|africa|america|continent`)
	chartRe    = regexp.MustCompile(`(?i)pie\s+chart|bar\s+(chart|graph)|line\s+(chart|graph)|donut\s+chart|chart|graph|infographic|data\s+visualization|visualization`)
	listRe     = regexp.MustCompile(`(?i)list|items|checklist|tasks|steps|things|products`)
	sequenceRe = regexp.MustCompile(`(?i)sequence|one by one|one at a time|individually|each|multiple|several`)
	// The fallback path additionally treats bare "animate" as sequence
	// language; the instruction path does not.
	sequenceLooseRe = regexp.MustCompile(`(?i)sequence|one by one|one at a time|individually|each|multiple|several|animate`)
	groceryRe       = regexp.MustCompile(`(?i)grocery|shopping|food`)
	europeRe        = regexp.MustCompile(`(?i)europe|european`)
)

// ContentFlags classifies what kind of payload the prompt is about. Several
// flags can be set at once; precedence (map > chart > list) is applied by
// the synthesizer.
type ContentFlags struct {
	Map           bool
	Chart         bool
	List          bool
	Sequence      bool
	SequenceLoose bool
	Grocery       bool
	Europe        bool
}

func ClassifyContent(prompt string) ContentFlags {
	flags := ContentFlags{
		Map:           mapRe.MatchString(prompt),
		Chart:         chartRe.MatchString(prompt),
		Sequence:      sequenceRe.MatchString(prompt),
		SequenceLoose: sequenceLooseRe.MatchString(prompt),
		Grocery:       groceryRe.MatchString(prompt),
		Europe:        europeRe.MatchString(prompt),
	}
	flags.List = listRe.MatchString(prompt) && !flags.Chart && !flags.Map
	return flags
}

var moodRules = []struct {
	name string
	re   *regexp.Regexp
	set  func(*MoodFlags)
}{
	{"intro", regexp.MustCompile(`(?i)intro|welcome|hello|start|begin`), func(f *MoodFlags) { f.Intro = true }},
	{"energetic", regexp.MustCompile(`(?i)energy|fast|dynamic|exciting|sale|discount`), func(f *MoodFlags) { f.Energetic = true }},
	{"elegant", regexp.MustCompile(`(?i)elegant|luxury|premium|sophisticated`), func(f *MoodFlags) { f.Elegant = true }},
	{"tech", regexp.MustCompile(`(?i)tech|digital|future|ai|code|software|app|device`), func(f *MoodFlags) { f.Tech = true }},
	{"social", regexp.MustCompile(`(?i)subscribe|like|follow|share|comment|bell`), func(f *MoodFlags) { f.Social = true }},
	{"data", regexp.MustCompile(`(?i)stats|data|growth|chart|number|percent|counter|million|billion`), func(f *MoodFlags) { f.Data = true }},
	{"product", regexp.MustCompile(`(?i)product|launch|new|introducing|showcase|phone|device`), func(f *MoodFlags) { f.Product = true }},
	{"meme", regexp.MustCompile(`(?i)wait|boom|wow|omg|viral|crazy|reaction`), func(f *MoodFlags) { f.Meme = true }},
	{"retro", regexp.MustCompile(`(?i)retro|vhs|vintage|80s|90s|glitch`), func(f *MoodFlags) { f.Retro = true }},
	{"explainer", regexp.MustCompile(`(?i)how|step|guide|tutorial|explain`), func(f *MoodFlags) { f.Explainer = true }},
	{"timeline", regexp.MustCompile(`(?i)timeline|history|journey|process|stages`), func(f *MoodFlags) { f.Timeline = true }},
}

// MoodFlags drive scene-type selection on the generic multi-scene narrative
// path. They are independent; priority between them lives in the
// synthesizer's opening/middle scene selection.
type MoodFlags struct {
	Intro     bool
	Energetic bool
	Elegant   bool
	Tech      bool
	Social    bool
	Data      bool
	Product   bool
	Meme      bool
	Retro     bool
	Explainer bool
	Timeline  bool
}

func ClassifyMood(prompt string) MoodFlags {
	var flags MoodFlags
	for _, rule := range moodRules {
		if rule.re.MatchString(prompt) {
			rule.set(&flags)
		}
	}
	return flags
}
