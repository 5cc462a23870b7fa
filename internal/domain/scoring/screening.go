package scoring

import (
	"strings"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"
)

type ApplicantScore struct {
	Score   float64
	Reasons []string
}

const (
	screeningRequiredWeight  = 60.0
	screeningPreferredWeight = 30.0
	screeningSeniorityBonus  = 10.0
	seniorMissingPenalty     = 10.0
	overqualifiedPenalty     = 5.0
)

// ScreenApplicant scores one resolved applicant against a job's requirements
// on a [0,100] scale.
func ScreenApplicant(p profile.UserProfile, j job.Posting) ApplicantScore {
	score := 0.0
	reasons := make([]string, 0, 3)

	required := MatchSkills(j.RequiredSkills, p.Skills)
	if len(normalizeSkillSet(j.RequiredSkills)) > 0 {
		score += required.Fraction * screeningRequiredWeight
		switch {
		case required.Fraction == 1:
			reasons = append(reasons, "All required skills matched.")
		case required.Count > 0:
			reasons = append(reasons, "Matched required skills: "+strings.Join(required.Matched, ", ")+".")
		default:
			reasons = append(reasons, "No required skills matched.")
		}
	} else {
		score += screeningRequiredWeight
		reasons = append(reasons, "No specific required skills for this job.")
	}

	preferred := MatchSkills(j.PreferredSkills, p.Skills)
	if len(normalizeSkillSet(j.PreferredSkills)) > 0 {
		score += preferred.Fraction * screeningPreferredWeight
		if preferred.Count > 0 {
			reasons = append(reasons, "Matched preferred skills: "+strings.Join(preferred.Matched, ", ")+".")
		}
	}

	seniority := strings.ToLower(j.SeniorityLevel)
	switch {
	case strings.Contains(seniority, "senior") && !hasSeniorExperience(p):
		score -= seniorMissingPenalty
		if score < 0 {
			score = 0
		}
		reasons = append(reasons, "Job is senior level, but applicant lacks explicit senior experience.")
	case strings.Contains(seniority, "entry-level") && hasSeniorExperience(p):
		score -= overqualifiedPenalty
		if score < 0 {
			score = 0
		}
		reasons = append(reasons, "Job is entry-level, applicant appears overqualified.")
	default:
		score += screeningSeniorityBonus
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "General fit.")
	}

	return ApplicantScore{
		Score:   round2(clampFloat(score, 0, 100)),
		Reasons: reasons,
	}
}

func hasSeniorExperience(p profile.UserProfile) bool {
	for _, exp := range p.Experience {
		if strings.Contains(strings.ToLower(exp.Title), "senior") {
			return true
		}
	}
	return false
}
