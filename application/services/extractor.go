package services

import (
	"regexp"
	"strings"
)

// Extraction turns an already-classified prompt into the pipe-encoded text
// payload a renderer parses downstream. The encodings are a wire format:
// "Highlighted:Name|..." for maps, "Label:Value|..." for charts, plain
// "Item|Item|..." for lists. Every function has a placeholder fallback and
// never fails.

var (
	countryRe = regexp.MustCompile(`(?i)\b(france|germany|italy|spain|uk|united\s+kingdom|england|poland|netherlands|belgium|portugal|greece|austria|sweden|norway|denmark|finland|switzerland|ireland|czech|romania|hungary|bulgaria|croatia|slovakia|slovenia|estonia|latvia|lithuania|usa|united\s+states|america|canada|mexico|brazil|argentina|china|japan|india|russia|australia|south\s+korea|indonesia|thailand|vietnam|philippines|malaysia|singapore|south\s+africa|egypt|nigeria|kenya|morocco|tunisia|algeria|turkey|israel|saudi\s+arabia|uae|iran|iraq|pakistan|bangladesh|afghanistan|kazakhstan|uzbekistan|ukraine|belarus|moldova|georgia|armenia|azerbaijan)\b`)

	highlightedCountryRe = regexp.MustCompile(`(?i)(?:highlighting|highlighted|highlight|emphasize|focus|show)\s+(?:on\s+)?([a-z\s]+?)(?:\s+country|\s+on|\s+map|$)`)

	dietRe   = regexp.MustCompile(`(?i)diet|nutrition|food|meal|protein|carbs|fat|fiber|vitamin`)
	budgetRe = regexp.MustCompile(`(?i)budget|finance|money|expense|income|spending`)
	salesRe  = regexp.MustCompile(`(?i)sales|revenue|profit|business|market`)
)

// titleCaseCountry normalizes one matched country name the way the encoded
// payload expects: first letter upper, the rest lower ("UK" -> "Uk",
// "united kingdom" -> "United kingdom").
func titleCaseCountry(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// highlightFillerWords are captures of the highlight pattern that cannot be
// an entity name ("show me a map" captures "me a").
var highlightFillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "me": true, "my": true, "us": true,
	"our": true, "your": true, "on": true, "of": true, "this": true, "that": true,
}

func isHighlightFiller(candidate string) bool {
	for _, w := range strings.Fields(strings.ToLower(candidate)) {
		if !highlightFillerWords[w] {
			return false
		}
	}
	return true
}

// detectHighlight scans every highlight-pattern match in the prompt. The
// first capture that resolves to one of the detected countries (substring
// match in either direction) wins; the first usable capture overall is kept
// as the verbatim fallback name for the placeholder lists.
func detectHighlight(prompt string, countries []string) (resolved, verbatim string) {
	for _, m := range highlightedCountryRe.FindAllStringSubmatch(prompt, -1) {
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || isHighlightFiller(candidate) {
			continue
		}
		if verbatim == "" {
			verbatim = candidate
		}
		lowered := strings.ToLower(candidate)
		for _, c := range countries {
			cl := strings.ToLower(c)
			if strings.Contains(cl, lowered) || strings.Contains(lowered, cl) {
				return c, verbatim
			}
		}
	}
	return "", verbatim
}

// ExtractMapData builds the map payload from the prompt: deduped detected
// countries in first-seen order, an optional highlighted entity promoted to
// the front, and fixed fallbacks when nothing is detected.
func ExtractMapData(prompt string) string {
	matches := countryRe.FindAllString(prompt, -1)

	seen := make(map[string]bool, len(matches))
	unique := make([]string, 0, len(matches))
	for _, match := range matches {
		name := titleCaseCountry(match)
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}

	highlighted, verbatim := detectHighlight(prompt, unique)

	if len(unique) > 0 {
		switch {
		case highlighted != "":
			rest := make([]string, 0, len(unique)-1)
			for _, c := range unique {
				if c != highlighted {
					rest = append(rest, c)
				}
			}
			return "Highlighted:" + highlighted + "|" + strings.Join(rest, "|")
		case verbatim != "":
			return "Highlighted:" + verbatim + "|" + strings.Join(unique, "|")
		default:
			return strings.Join(unique, "|")
		}
	}

	if europeRe.MatchString(prompt) {
		if verbatim != "" {
			return "Highlighted:" + verbatim + "|Germany|Italy|Spain|UK|Poland|Netherlands|Belgium|Portugal|Greece"
		}
		return "France|Germany|Italy|Spain|UK|Poland|Netherlands|Belgium|Portugal|Greece"
	}

	if verbatim != "" {
		return "Highlighted:" + verbatim + "|Country1|Country2|Country3|Country4"
	}
	return "Country1|Country2|Country3|Country4|Country5"
}

// ExtractChartData picks the fixed dataset for the prompt's semantic domain.
// The fallback path deliberately does not parse numbers out of the prompt;
// only the generative backend produces prompt-specific values.
func ExtractChartData(prompt string) string {
	switch {
	case dietRe.MatchString(prompt):
		return "Protein:30|Carbs:40|Fats:20|Fiber:10"
	case budgetRe.MatchString(prompt):
		return "Housing:40|Food:20|Transport:15|Entertainment:15|Savings:10"
	case salesRe.MatchString(prompt):
		return "Q1:25|Q2:30|Q3:20|Q4:25"
	default:
		return "Category A:35|Category B:25|Category C:20|Category D:20"
	}
}

var listStopWords = map[string]bool{
	"the": true, "of": true, "a": true, "an": true, "and": true, "or": true,
	"for": true, "with": true, "from": true, "to": true, "in": true,
	"on": true, "at": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "should": true, "could": true, "may": true,
	"might": true, "must": true, "can": true,
}

// ExtractListItems builds the checklist payload: the fixed grocery list for
// shopping prompts, otherwise the first six meaningful prompt tokens, with a
// generic placeholder list when fewer than three remain.
func ExtractListItems(prompt string) string {
	if groceryRe.MatchString(prompt) {
		return "Milk|Bread|Eggs|Cheese|Fruits|Vegetables|Meat|Rice"
	}

	words := strings.Split(prompt, " ")
	meaningful := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 2 && !listStopWords[strings.ToLower(w)] {
			meaningful = append(meaningful, w)
		}
	}

	if len(meaningful) >= 3 {
		if len(meaningful) > 6 {
			meaningful = meaningful[:6]
		}
		return strings.Join(meaningful, "|")
	}
	return "Item 1|Item 2|Item 3|Item 4|Item 5"
}

// metaKeywords are stripped, in this order, from a single-scene prompt to
// leave the residual display text.
var metaKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)counter`),
	regexp.MustCompile(`(?i)number counter`),
	regexp.MustCompile(`(?i)text counter`),
	regexp.MustCompile(`(?i)animation`),
	regexp.MustCompile(`(?i)effect`),
	regexp.MustCompile(`(?i)scene`),
	regexp.MustCompile(`(?i)video`),
}

// ExtractSingleSceneText strips animation meta-words from the prompt; when
// nothing meaningful remains a default payload is substituted.
func ExtractSingleSceneText(prompt string) string {
	text := prompt
	for _, re := range metaKeywords {
		text = strings.TrimSpace(re.ReplaceAllString(text, ""))
	}
	if len(text) < 3 {
		return "1000+"
	}
	return text
}
