package handler

import (
	"errors"

	"jobboard-ai/internal/delivery/http/dto"
	"jobboard-ai/internal/delivery/http/middleware"
	"jobboard-ai/internal/pkg/response"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScreeningHandler struct {
	uc usecase.ScreeningUsecase
}

type screenCandidatesRequest struct {
	JobID        string   `json:"jobId"`
	ApplicantIDs []string `json:"applicantIds"`
}

func NewScreeningHandler(uc usecase.ScreeningUsecase) *ScreeningHandler {
	return &ScreeningHandler{uc: uc}
}

func (h *ScreeningHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/screen-candidates", h.ScreenCandidates)
}

func (h *ScreeningHandler) ScreenCandidates(c fiber.Ctx) error {
	var req screenCandidatesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "jobId and applicantIds are required.", nil, err)
	}

	items, err := h.uc.ScreenCandidates(c.Context(), req.JobID, req.ApplicantIDs)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "jobId and applicantIds are required.", nil, err)
		case errors.Is(err, usecase.ErrJobNotFound):
			// An unknown job is a valid outcome: 404 with an empty result list.
			return response.Error(c, fiber.StatusNotFound, "Job details not found.", []dto.ScreeningResultResponse{})
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	out := make([]dto.ScreeningResultResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ScreeningResultResponse{
			ApplicantID: it.ApplicantID,
			Score:       it.Score,
			Reasons:     it.Reasons,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
