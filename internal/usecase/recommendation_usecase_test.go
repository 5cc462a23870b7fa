package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	profiles map[string]profile.UserProfile
	err      error
}

func (m mockProfileRepo) FindByID(_ context.Context, id string) (profile.UserProfile, error) {
	if m.err != nil {
		return profile.UserProfile{}, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return profile.UserProfile{}, profile.ErrNotFound
	}
	return p, nil
}

type mockJobRepo struct {
	byID   map[string]job.Posting
	active []job.Posting
	err    error
}

func (m mockJobRepo) FindByID(_ context.Context, id string) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Posting{}, job.ErrNotFound
	}
	return j, nil
}

func (m mockJobRepo) ListActive(context.Context) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.active, nil
}

func activeJobs(n int) []job.Posting {
	out := make([]job.Posting, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, job.Posting{ID: uuid.New(), Status: job.StatusActive})
	}
	return out
}

func TestRecommendation_MissingUserID(t *testing.T) {
	uc := NewRecommendationUsecase(mockProfileRepo{}, mockJobRepo{})
	_, err := uc.RecommendJobs(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendation_UnknownUserFallsBack(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockProfileRepo{},
		mockJobRepo{active: activeJobs(7)},
	)

	out, err := uc.RecommendJobs(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("unknown user must not be an error, got %v", err)
	}
	if out.Message != "User profile not found. Showing general jobs." {
		t.Fatalf("expected the degraded-path message, got %q", out.Message)
	}
	if len(out.Items) != 5 {
		t.Fatalf("expected 5 fallback jobs, got %d", len(out.Items))
	}
	for _, it := range out.Items {
		if it.Score != 0.5 || it.Reasons[0] != "General match" {
			t.Fatalf("fallback item must carry 0.5 / General match, got %+v", it)
		}
	}
}

func TestRecommendation_NoSkillsFallsBackWithoutMessage(t *testing.T) {
	userID := uuid.NewString()
	uc := NewRecommendationUsecase(
		mockProfileRepo{profiles: map[string]profile.UserProfile{userID: {}}},
		mockJobRepo{active: activeJobs(2)},
	)

	out, err := uc.RecommendJobs(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Message != "" {
		t.Fatalf("resolved user keeps the message empty, got %q", out.Message)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected both jobs in fallback, got %d", len(out.Items))
	}
}

func TestRecommendation_EmptyPersonalizedSetFallsBack(t *testing.T) {
	userID := uuid.NewString()
	jobs := []job.Posting{{ID: uuid.New(), RequiredSkills: []string{"cobol"}, Status: job.StatusActive}}
	uc := NewRecommendationUsecase(
		mockProfileRepo{profiles: map[string]profile.UserProfile{userID: {Skills: []string{"go"}}}},
		mockJobRepo{active: jobs},
	)

	out, err := uc.RecommendJobs(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Score != 0.5 {
		t.Fatalf("expected fallback list, got %+v", out.Items)
	}
}

func TestRecommendation_PersonalizedRanking(t *testing.T) {
	userID := uuid.NewString()
	strong := job.Posting{ID: uuid.New(), Title: "Go Dev", RequiredSkills: []string{"go", "sql"}, Status: job.StatusActive}
	weak := job.Posting{ID: uuid.New(), Title: "Polyglot", RequiredSkills: []string{"go", "rust", "java", "c"}, Status: job.StatusActive}
	uc := NewRecommendationUsecase(
		mockProfileRepo{profiles: map[string]profile.UserProfile{userID: {Skills: []string{"go", "sql"}}}},
		mockJobRepo{active: []job.Posting{weak, strong}},
	)

	out, err := uc.RecommendJobs(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 personalized items, got %d", len(out.Items))
	}
	if out.Items[0].JobID != strong.ID {
		t.Fatalf("expected the stronger match ranked first")
	}
	if out.Items[0].Title != "Go Dev" {
		t.Fatalf("job card must carry the posting fields, got %+v", out.Items[0])
	}
}

func TestRecommendation_ListFailureIsInternal(t *testing.T) {
	uc := NewRecommendationUsecase(mockProfileRepo{}, mockJobRepo{err: errors.New("boom")})
	_, err := uc.RecommendJobs(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
