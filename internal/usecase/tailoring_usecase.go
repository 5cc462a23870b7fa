package usecase

import (
	"context"
	"strings"

	"jobboard-ai/internal/domain/scoring"
	"jobboard-ai/internal/keywords"
	"jobboard-ai/internal/repository"
)

type TailoringUsecase interface {
	TailorProfile(ctx context.Context, userID, jobID string) (scoring.TailoringResult, error)
}

type Tailoring struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	extract  keywords.Extractor
}

func NewTailoringUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository, extract keywords.Extractor) *Tailoring {
	if extract == nil {
		extract = keywords.Extract
	}
	return &Tailoring{profiles: profiles, jobs: jobs, extract: extract}
}

func (u *Tailoring) TailorProfile(ctx context.Context, userID, jobID string) (scoring.TailoringResult, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" {
		return scoring.TailoringResult{}, ErrInvalidInput
	}

	p, err := u.profiles.FindByID(ctx, userID)
	if err != nil {
		return scoring.TailoringResult{}, ErrUserNotFound
	}
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return scoring.TailoringResult{}, ErrJobNotFound
	}

	return scoring.TailorProfile(p, j, u.extract), nil
}
