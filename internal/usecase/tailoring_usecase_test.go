package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/profile"

	"github.com/google/uuid"
)

func TestTailoring_MissingInput(t *testing.T) {
	uc := NewTailoringUsecase(mockProfileRepo{}, mockJobRepo{}, nil)
	if _, err := uc.TailorProfile(context.Background(), "", uuid.NewString()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.TailorProfile(context.Background(), uuid.NewString(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTailoring_NotFoundMapping(t *testing.T) {
	userID := uuid.NewString()
	uc := NewTailoringUsecase(
		mockProfileRepo{profiles: map[string]profile.UserProfile{userID: {}}},
		mockJobRepo{},
		nil,
	)

	if _, err := uc.TailorProfile(context.Background(), uuid.NewString(), uuid.NewString()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.TailorProfile(context.Background(), userID, uuid.NewString()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestTailoring_ProducesSuggestionsAndPreview(t *testing.T) {
	userID := uuid.NewString()
	jobID := uuid.NewString()
	uc := NewTailoringUsecase(
		mockProfileRepo{profiles: map[string]profile.UserProfile{userID: {Skills: []string{"python"}}}},
		mockJobRepo{byID: map[string]job.Posting{jobID: {
			Title:          "Data Engineer",
			Description:    "Pipelines",
			RequiredSkills: []string{"python", "sql"},
		}}},
		nil,
	)

	res, err := uc.TailorProfile(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Suggestions) == 0 {
		t.Fatalf("expected suggestions for the missing skill")
	}
	if !strings.Contains(res.Preview, "**Job Title:** Data Engineer") {
		t.Fatalf("preview must include the job title:\n%s", res.Preview)
	}
}
