package scoring

import "strings"

type ScamResult struct {
	IsSuspicious bool
	Score        float64
	Flags        []string
}

const (
	scamKeywordScore  = 0.10
	highPayNoExpScore = 0.20
	urgentHiringScore = 0.10
	vagueCompanyScore = 0.05
)

// scamKeywords is checked in order against the combined title+description
// text, case-insensitive substring match.
var scamKeywords = []string{
	"upfront fee",
	"telegram only",
	"investment opportunity",
	"crypto payment",
	"send money",
	"work-from-home kit",
	"high commission",
	"get rich quick",
	"no experience required",
	"easy money",
	"passive income",
	"recruitment fee",
	"pyramid scheme",
	"multi-level marketing",
	"MLM",
	"fast cash",
	"instant profit",
	"secret method",
	"guaranteed income",
}

var highSalaryTokens = []string{"100k", "150k", "200k", "high salary", "six figure"}

var qualificationTokens = []string{"experience", "qualifications", "skills"}

var vagueCompanyNames = []string{"confidential", "anonymous", "private employer"}

// DetectScam scores a posting's suspiciousness from text heuristics alone.
// Flags come out in evaluation order: keyword hits in table order, then the
// three heuristics. The score accumulates 0.10 per keyword plus the
// heuristic weights and is capped at 1.0.
func DetectScam(title, description, companyName string) ScamResult {
	title = strings.ToLower(title)
	description = strings.ToLower(description)
	companyName = strings.ToLower(strings.TrimSpace(companyName))
	combined := title + " " + description

	res := ScamResult{Flags: make([]string, 0, 4)}
	score := 0.0

	for _, kw := range scamKeywords {
		if strings.Contains(combined, strings.ToLower(kw)) {
			res.Flags = append(res.Flags, "Contains suspicious keyword: '"+kw+"'")
			score += scamKeywordScore
		}
	}

	if (strings.Contains(description, "no experience") || strings.Contains(title, "entry level")) &&
		containsAny(description, highSalaryTokens) {
		res.Flags = append(res.Flags, "Suspicious: High pay for little or no experience mentioned.")
		score += highPayNoExpScore
	}

	if strings.Contains(combined, "urgent hiring") && strings.Contains(combined, "immediate start") &&
		!containsAny(description, qualificationTokens) {
		res.Flags = append(res.Flags, "Suspicious: Urgent hiring without clear qualifications.")
		score += urgentHiringScore
	}

	if companyName != "" && containsFold(vagueCompanyNames, companyName) {
		res.Flags = append(res.Flags, "Vague company name: '"+companyName+"'.")
		score += vagueCompanyScore
	}

	res.IsSuspicious = len(res.Flags) > 0
	res.Score = round2(clampFloat(score, 0, 1))
	return res
}

func containsAny(text string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
