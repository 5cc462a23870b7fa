package usecase

import (
	"context"
	"strings"

	"jobboard-ai/internal/domain/scoring"
)

type ScamDetectionUsecase interface {
	Detect(ctx context.Context, title, description, companyName string) (scoring.ScamResult, error)
}

type ScamDetection struct{}

func NewScamDetectionUsecase() *ScamDetection {
	return &ScamDetection{}
}

func (u *ScamDetection) Detect(_ context.Context, title, description, companyName string) (scoring.ScamResult, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(description) == "" {
		return scoring.ScamResult{}, ErrInvalidInput
	}
	return scoring.DetectScam(title, description, companyName), nil
}
