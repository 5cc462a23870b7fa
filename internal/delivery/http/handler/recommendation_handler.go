package handler

import (
	"errors"

	"jobboard-ai/internal/delivery/http/dto"
	"jobboard-ai/internal/delivery/http/middleware"
	"jobboard-ai/internal/pkg/response"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

type recommendJobsRequest struct {
	UserID string `json:"userId"`
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend-jobs", h.RecommendJobs)
}

func (h *RecommendationHandler) RecommendJobs(c fiber.Ctx) error {
	var req recommendJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId is required.", nil, err)
	}

	out, err := h.uc.RecommendJobs(c.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required.", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	items := make([]dto.RecommendedJobResponse, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, dto.RecommendedJobResponse{
			JobID:       it.JobID,
			Score:       it.Score,
			Reasons:     it.Reasons,
			Title:       it.Title,
			Company:     it.Company,
			Location:    it.Location,
			JobType:     it.JobType,
			Description: it.Description,
			CreatedAt:   it.CreatedAt,
		})
	}

	msg := out.Message
	if msg == "" {
		msg = response.MessageOK
	}
	return response.Success(c, fiber.StatusOK, msg, items)
}
