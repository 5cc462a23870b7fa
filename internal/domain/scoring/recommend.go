package scoring

import (
	"sort"
	"strings"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"
)

const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3

	locationBonus  = 0.10
	jobTypeBonus   = 0.05
	seniorityBonus = 0.10
	industryBonus  = 0.10
)

type JobScore struct {
	Job     job.Posting
	Score   float64
	Reasons []string
}

// RecommendJobs scores every posting against the profile, keeps those with a
// positive score, and returns them ordered best first. The sort is stable:
// ties keep the encounter order of the input.
func RecommendJobs(p profile.UserProfile, jobs []job.Posting) []JobScore {
	out := make([]JobScore, 0, len(jobs))
	for _, j := range jobs {
		score, reasons := ScoreJob(p, j)
		if score <= 0 {
			continue
		}
		out = append(out, JobScore{Job: j, Score: score, Reasons: reasons})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// ScoreJob computes the weighted skill score of one posting plus preference
// bonuses, clamped to [0,1]. A posting with no required skills contributes
// nothing from the required term, it gets no default.
func ScoreJob(p profile.UserProfile, j job.Posting) (float64, []string) {
	score := 0.0
	reasons := make([]string, 0, 5)

	required := MatchSkills(j.RequiredSkills, p.Skills)
	preferred := MatchSkills(j.PreferredSkills, p.Skills)

	if len(j.RequiredSkills) > 0 {
		score += required.Fraction * requiredSkillWeight
	}
	if len(j.PreferredSkills) > 0 {
		score += preferred.Fraction * preferredSkillWeight
	}

	if matched := unionSkills(required.Matched, preferred.Matched); len(matched) > 0 {
		reasons = append(reasons, "Matched skills: "+strings.Join(matched, ", "))
	}

	if containsFold(p.Preferences.Locations, j.Location) {
		score += locationBonus
		reasons = append(reasons, "Job location matches your preference.")
	}
	if containsFold(p.Preferences.JobTypes, j.JobType) {
		score += jobTypeBonus
		reasons = append(reasons, "Job type matches your preference.")
	}
	if containsFold(p.Preferences.SeniorityLevels, j.SeniorityLevel) {
		score += seniorityBonus
		reasons = append(reasons, "Seniority level matches your preference.")
	}
	if containsFold(p.Preferences.Industries, j.Industry) {
		score += industryBonus
		reasons = append(reasons, "Industry matches your preference.")
	}

	return round4(clampFloat(score, 0, 1)), reasons
}

func unionSkills(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range b {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
