package usecase

import (
	"context"
	"strings"

	"jobboard-ai/internal/domain/scoring"
	"jobboard-ai/internal/repository"
)

const applicantNotFoundReason = "Applicant profile not found in DB or invalid ID."

type ScreeningItem struct {
	ApplicantID string
	Score       float64
	Reasons     []string
}

type ScreeningUsecase interface {
	ScreenCandidates(ctx context.Context, jobID string, applicantIDs []string) ([]ScreeningItem, error)
}

type Screening struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
}

func NewScreeningUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository) *Screening {
	return &Screening{profiles: profiles, jobs: jobs}
}

// ScreenCandidates resolves the job once and every applicant independently.
// One applicant's resolution failure never aborts the rest of the batch;
// results keep the input order.
func (u *Screening) ScreenCandidates(ctx context.Context, jobID string, applicantIDs []string) ([]ScreeningItem, error) {
	if strings.TrimSpace(jobID) == "" || len(applicantIDs) == 0 {
		return nil, ErrInvalidInput
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	out := make([]ScreeningItem, 0, len(applicantIDs))
	for _, applicantID := range applicantIDs {
		p, err := u.profiles.FindByID(ctx, applicantID)
		if err != nil {
			out = append(out, ScreeningItem{
				ApplicantID: applicantID,
				Score:       0,
				Reasons:     []string{applicantNotFoundReason},
			})
			continue
		}

		res := scoring.ScreenApplicant(p, j)
		out = append(out, ScreeningItem{
			ApplicantID: p.ID.String(),
			Score:       res.Score,
			Reasons:     res.Reasons,
		})
	}
	return out, nil
}
