package keywords

import (
	"strings"
	"unicode"
)

// Extractor turns free text into an ordered sequence of filtered keyword
// tokens. Scorers take it as a parameter so the extraction strategy stays
// swappable.
type Extractor func(text string) []string

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "your": {}, "our": {}, "their": {}, "this": {}, "that": {},
	"with": {}, "from": {}, "have": {}, "has": {}, "had": {}, "was": {},
	"were": {}, "will": {}, "would": {}, "can": {}, "could": {},
	"should": {}, "all": {}, "any": {}, "been": {}, "being": {},
	"into": {}, "about": {}, "who": {}, "what": {}, "where": {},
	"when": {}, "which": {}, "how": {}, "than": {}, "then": {},
	"them": {}, "they": {}, "there": {}, "here": {}, "its": {},
	"also": {}, "more": {}, "most": {}, "other": {}, "such": {},
	"per": {}, "via": {}, "etc": {},
}

// excluded covers job-posting boilerplate that survives the stopword table
// but carries no signal for profile tailoring.
var excluded = map[string]struct{}{
	"job": {}, "work": {}, "role": {}, "team": {}, "company": {},
	"candidate": {}, "position": {}, "apply": {}, "looking": {},
	"join": {}, "ideal": {}, "strong": {}, "ability": {},
}

// Extract lower-cases text, keeps letters and digits (everything else
// becomes a separator), drops stopwords, excluded boilerplate, and tokens of
// length <= 2, and returns the unique remainder in first-appearance order.
func Extract(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	text = strings.ToLower(text)

	b := strings.Builder{}
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	out := make([]string, 0, 16)
	seen := make(map[string]struct{}, 16)
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if _, ok := excluded[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
