package scoring

import (
	"math"
	"sort"
	"strings"
)

// SkillMatch is the result of comparing a candidate skill collection against
// a required one. Matching is case-insensitive with set semantics: duplicate
// entries never inflate the count.
type SkillMatch struct {
	// Matched holds the intersection, sorted for deterministic rendering.
	Matched []string
	Count   int
	// Fraction is Count divided by the required set size, 0 when the
	// required set is empty. Callers apply their own empty-set defaults.
	Fraction float64
}

func MatchSkills(required, candidate []string) SkillMatch {
	req := normalizeSkillSet(required)
	cand := normalizeSkillSet(candidate)

	matched := make([]string, 0, len(req))
	for s := range req {
		if _, ok := cand[s]; ok {
			matched = append(matched, s)
		}
	}
	sort.Strings(matched)

	m := SkillMatch{Matched: matched, Count: len(matched)}
	if len(req) > 0 {
		m.Fraction = float64(m.Count) / float64(len(req))
	}
	return m
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

func containsFold(list []string, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return false
	}
	for _, item := range list {
		if strings.ToLower(strings.TrimSpace(item)) == value {
			return true
		}
	}
	return false
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
