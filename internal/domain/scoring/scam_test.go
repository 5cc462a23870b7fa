package scoring

import (
	"strings"
	"testing"
)

func TestDetectScam_CleanPosting(t *testing.T) {
	res := DetectScam("Backend Engineer", "Build APIs in Go. 5 years experience required.", "Acme Corp")
	if res.IsSuspicious {
		t.Fatalf("expected clean posting, got flags %v", res.Flags)
	}
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
}

func TestDetectScam_HighPayNoExperienceScenario(t *testing.T) {
	res := DetectScam("Entry Level Assistant", "no experience required, salary 150k", "")
	if !res.IsSuspicious {
		t.Fatalf("expected suspicious posting")
	}
	if res.Score != 0.30 {
		t.Fatalf("expected score 0.30, got %v", res.Score)
	}
	if len(res.Flags) != 2 {
		t.Fatalf("expected keyword flag plus heuristic flag, got %v", res.Flags)
	}
	if !strings.Contains(res.Flags[0], "no experience required") {
		t.Fatalf("keyword flag must come first, got %v", res.Flags)
	}
}

func TestDetectScam_UrgentHiringWithoutQualifications(t *testing.T) {
	res := DetectScam("Urgent hiring", "immediate start, apply now", "")
	if !res.IsSuspicious || res.Score != 0.10 {
		t.Fatalf("expected urgent-hiring heuristic alone, got %+v", res)
	}
}

func TestDetectScam_UrgentHiringWithQualificationsMentioned(t *testing.T) {
	res := DetectScam("Urgent hiring", "immediate start, 3 years experience needed", "")
	if res.IsSuspicious {
		t.Fatalf("qualifications mention should suppress the heuristic, got %v", res.Flags)
	}
}

func TestDetectScam_VagueCompanyName(t *testing.T) {
	res := DetectScam("Clerk", "Filing work, skills in order.", "Confidential")
	if !res.IsSuspicious || res.Score != 0.05 {
		t.Fatalf("expected vague-company flag, got %+v", res)
	}
}

func TestDetectScam_ScoreCappedAtOne(t *testing.T) {
	desc := strings.Join(scamKeywords, ". ") + ". no experience, salary 200k, urgent hiring, immediate start"
	res := DetectScam("entry level", desc, "anonymous")
	if res.Score != 1.0 {
		t.Fatalf("expected cap at 1.0, got %v", res.Score)
	}
	if !res.IsSuspicious {
		t.Fatalf("expected suspicious")
	}
}

func TestDetectScam_MonotonicInFiredChecks(t *testing.T) {
	one := DetectScam("", "easy money", "")
	two := DetectScam("", "easy money and fast cash", "")
	if two.Score <= one.Score {
		t.Fatalf("score must not decrease with more fired checks: %v then %v", one.Score, two.Score)
	}
}

func TestDetectScam_SuspiciousIffScorePositive(t *testing.T) {
	for _, res := range []ScamResult{
		DetectScam("Engineer", "normal description with experience listed", ""),
		DetectScam("", "passive income stream", ""),
	} {
		if res.IsSuspicious != (res.Score > 0) {
			t.Fatalf("isSuspicious must mirror score > 0: %+v", res)
		}
	}
}
