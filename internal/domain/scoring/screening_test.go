package scoring

import (
	"testing"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"
)

func TestScreenApplicant_FullRequiredNoPreferred(t *testing.T) {
	p := profile.UserProfile{Skills: []string{"go", "sql"}}
	j := job.Posting{
		RequiredSkills:  []string{"go", "sql"},
		PreferredSkills: []string{"aws"},
		SeniorityLevel:  "mid",
	}

	res := ScreenApplicant(p, j)
	if res.Score != 70 {
		t.Fatalf("expected 60 + 0 + 10 = 70, got %v", res.Score)
	}
	if res.Reasons[0] != "All required skills matched." {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestScreenApplicant_PartialRequired(t *testing.T) {
	p := profile.UserProfile{Skills: []string{"go"}}
	j := job.Posting{RequiredSkills: []string{"go", "sql"}}

	res := ScreenApplicant(p, j)
	if res.Score != 40 {
		t.Fatalf("expected 30 + 10 = 40, got %v", res.Score)
	}
	if res.Reasons[0] != "Matched required skills: go." {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestScreenApplicant_NoRequiredSkillsOnJob(t *testing.T) {
	p := profile.UserProfile{Skills: []string{"go"}}
	j := job.Posting{}

	res := ScreenApplicant(p, j)
	if res.Score != 70 {
		t.Fatalf("expected flat 60 + 10, got %v", res.Score)
	}
	if res.Reasons[0] != "No specific required skills for this job." {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestScreenApplicant_PreferredTerm(t *testing.T) {
	p := profile.UserProfile{Skills: []string{"go", "aws"}}
	j := job.Posting{
		RequiredSkills:  []string{"go"},
		PreferredSkills: []string{"aws", "terraform"},
	}

	res := ScreenApplicant(p, j)
	if res.Score != 85 {
		t.Fatalf("expected 60 + 15 + 10 = 85, got %v", res.Score)
	}
}

func TestScreenApplicant_SeniorPenalty(t *testing.T) {
	p := profile.UserProfile{
		Skills:     []string{"go"},
		Experience: []profile.Experience{{Title: "Software Engineer"}},
	}
	j := job.Posting{RequiredSkills: []string{"go"}, SeniorityLevel: "Senior"}

	res := ScreenApplicant(p, j)
	if res.Score != 50 {
		t.Fatalf("expected 60 - 10 = 50, got %v", res.Score)
	}
	found := false
	for _, r := range res.Reasons {
		if r == "Job is senior level, but applicant lacks explicit senior experience." {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing seniority reason: %v", res.Reasons)
	}
}

func TestScreenApplicant_SeniorTitleSatisfiesSeniorJob(t *testing.T) {
	p := profile.UserProfile{
		Skills:     []string{"go"},
		Experience: []profile.Experience{{Title: "Senior Software Engineer"}},
	}
	j := job.Posting{RequiredSkills: []string{"go"}, SeniorityLevel: "senior"}

	res := ScreenApplicant(p, j)
	if res.Score != 70 {
		t.Fatalf("expected 60 + 10 = 70, got %v", res.Score)
	}
}

func TestScreenApplicant_OverqualifiedPenalty(t *testing.T) {
	p := profile.UserProfile{
		Skills:     []string{"go"},
		Experience: []profile.Experience{{Title: "Senior Engineer"}},
	}
	j := job.Posting{RequiredSkills: []string{"rust"}, SeniorityLevel: "entry-level"}

	res := ScreenApplicant(p, j)
	if res.Score != 0 {
		t.Fatalf("expected floor at 0 after penalty, got %v", res.Score)
	}
}

func TestScreenApplicant_ScoreFloorZero(t *testing.T) {
	p := profile.UserProfile{}
	j := job.Posting{RequiredSkills: []string{"go"}, SeniorityLevel: "senior"}

	res := ScreenApplicant(p, j)
	if res.Score != 0 {
		t.Fatalf("expected 0 after floor, got %v", res.Score)
	}
}
