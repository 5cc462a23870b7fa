package scoring

import (
	"sort"
	"strings"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"
	"jobboard-ai/internal/keywords"
)

type TailoringResult struct {
	Suggestions []string
	Preview     string
}

const previewSnippetLen = 200

// TailorProfile diffs a profile against a posting and produces prose
// suggestions plus a tailored-resume preview. The extractor supplies the
// keyword tokens for the description relevance pass.
func TailorProfile(p profile.UserProfile, j job.Posting, extract keywords.Extractor) TailoringResult {
	suggestions := make([]string, 0, 4)

	userSkills := normalizeSkillSet(p.Skills)
	skillsLine := sortedSkills(userSkills)

	missingRequired := missingFrom(j.RequiredSkills, userSkills)
	if len(missingRequired) > 0 {
		suggestions = append(suggestions,
			"Consider adding the following required skills to your profile: "+strings.Join(missingRequired, ", ")+".")
		skillsLine = unionSkills(skillsLine, missingRequired)
	}

	missingPreferred := missingFrom(j.PreferredSkills, userSkills)
	if len(missingPreferred) > 0 {
		suggestions = append(suggestions,
			"Highlight any experience or projects related to these preferred skills: "+strings.Join(missingPreferred, ", ")+".")
	}

	if extract != nil {
		corpus := strings.ToLower(profileNarrative(p))
		for _, kw := range extract(j.Description) {
			if strings.Contains(corpus, kw) {
				continue
			}
			suggestions = append(suggestions,
				"The job emphasizes '"+kw+"'. If you have experience with this, elaborate on it in your experience or projects section.")
		}
	}

	suggestions = append(suggestions, preferenceGaps(p.Preferences, j)...)

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Your profile seems well-aligned with this job's requirements. Review the job description for any subtle details to emphasize.")
	}

	return TailoringResult{
		Suggestions: suggestions,
		Preview:     renderPreview(skillsLine, j, suggestions),
	}
}

func preferenceGaps(prefs profile.Preferences, j job.Posting) []string {
	out := make([]string, 0, 4)
	gap := func(set []string, value, dimension string) {
		if len(set) == 0 || strings.TrimSpace(value) == "" {
			return
		}
		if containsFold(set, value) {
			return
		}
		out = append(out,
			"This job's "+dimension+" ('"+value+"') is outside your stated preferences. Consider whether you are flexible on it before applying.")
	}
	gap(prefs.Locations, j.Location, "location")
	gap(prefs.JobTypes, j.JobType, "job type")
	gap(prefs.SeniorityLevels, j.SeniorityLevel, "seniority level")
	gap(prefs.Industries, j.Industry, "industry")
	return out
}

func renderPreview(skillsLine []string, j job.Posting, suggestions []string) string {
	b := strings.Builder{}
	b.WriteString("Your current profile + tailoring suggestions:\n\n")
	b.WriteString("**Skills (tailored):** " + strings.Join(skillsLine, ", ") + "\n")
	b.WriteString("\n**Job Title:** " + j.Title + "\n")
	b.WriteString("**Job Description Snippet:** " + snippet(j.Description, previewSnippetLen) + "...\n")
	b.WriteString("\n**Suggestions for improvement:**\n")
	for _, s := range suggestions {
		b.WriteString("- " + s + "\n")
	}
	return b.String()
}

func snippet(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

func profileNarrative(p profile.UserProfile) string {
	parts := make([]string, 0, len(p.Experience)+len(p.Projects))
	for _, exp := range p.Experience {
		parts = append(parts, exp.Description)
	}
	for _, proj := range p.Projects {
		parts = append(parts, proj.Description)
	}
	return strings.Join(parts, " ")
}

func missingFrom(jobSkills []string, userSkills map[string]struct{}) []string {
	out := make([]string, 0)
	for s := range normalizeSkillSet(jobSkills) {
		if _, ok := userSkills[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedSkills(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
