package usecase

import (
	"context"
	"strings"
	"time"

	"jobboard-ai/internal/domain/job"
	"jobboard-ai/internal/domain/scoring"
	"jobboard-ai/internal/repository"

	"github.com/google/uuid"
)

const (
	fallbackLimit  = 5
	fallbackScore  = 0.5
	fallbackReason = "General match"
)

type RecommendationItem struct {
	JobID       uuid.UUID
	Score       float64
	Reasons     []string
	Title       string
	Company     string
	Location    string
	JobType     string
	Description string
	CreatedAt   time.Time
}

// RecommendationOutput carries the ranked items plus an optional message for
// the degraded profile-not-found path.
type RecommendationOutput struct {
	Message string
	Items   []RecommendationItem
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, userID string) (RecommendationOutput, error)
}

type Recommendation struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
}

func NewRecommendationUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository) *Recommendation {
	return &Recommendation{profiles: profiles, jobs: jobs}
}

func (u *Recommendation) RecommendJobs(ctx context.Context, userID string) (RecommendationOutput, error) {
	if strings.TrimSpace(userID) == "" {
		return RecommendationOutput{}, ErrInvalidInput
	}

	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return RecommendationOutput{}, ErrInternal
	}

	// An unresolvable profile is a degraded-but-successful case, never an
	// error: the caller still gets the general fallback list.
	prof, err := u.profiles.FindByID(ctx, userID)
	if err != nil {
		return RecommendationOutput{
			Message: "User profile not found. Showing general jobs.",
			Items:   fallbackItems(jobs),
		}, nil
	}

	if len(prof.Skills) == 0 {
		return RecommendationOutput{Items: fallbackItems(jobs)}, nil
	}

	scored := scoring.RecommendJobs(prof, jobs)
	if len(scored) == 0 {
		return RecommendationOutput{Items: fallbackItems(jobs)}, nil
	}

	items := make([]RecommendationItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, toRecommendationItem(s.Job, s.Score, s.Reasons))
	}
	return RecommendationOutput{Items: items}, nil
}

func fallbackItems(jobs []job.Posting) []RecommendationItem {
	n := len(jobs)
	if n > fallbackLimit {
		n = fallbackLimit
	}
	items := make([]RecommendationItem, 0, n)
	for _, j := range jobs[:n] {
		items = append(items, toRecommendationItem(j, fallbackScore, []string{fallbackReason}))
	}
	return items
}

// toRecommendationItem is the single job-card formatter shared by the
// personalized and fallback branches.
func toRecommendationItem(j job.Posting, score float64, reasons []string) RecommendationItem {
	return RecommendationItem{
		JobID:       j.ID,
		Score:       score,
		Reasons:     reasons,
		Title:       j.Title,
		Company:     j.CompanyName,
		Location:    j.Location,
		JobType:     j.JobType,
		Description: j.Description,
		CreatedAt:   j.CreatedAt,
	}
}
