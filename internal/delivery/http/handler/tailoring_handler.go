package handler

import (
	"errors"

	"jobboard-ai/internal/delivery/http/dto"
	"jobboard-ai/internal/delivery/http/middleware"
	"jobboard-ai/internal/pkg/response"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TailoringHandler struct {
	uc usecase.TailoringUsecase
}

type tailoringRequest struct {
	UserID string `json:"userId"`
	JobID  string `json:"jobId"`
}

func NewTailoringHandler(uc usecase.TailoringUsecase) *TailoringHandler {
	return &TailoringHandler{uc: uc}
}

func (h *TailoringHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/profile-tailoring-suggestions", h.TailorProfile)
}

func (h *TailoringHandler) TailorProfile(c fiber.Ctx) error {
	var req tailoringRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and jobId are required.", nil, err)
	}

	res, err := h.uc.TailorProfile(c.Context(), req.UserID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "userId and jobId are required.", nil, err)
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User profile or job details not found.", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TailoringResponse{
		Suggestions:           res.Suggestions,
		TailoredResumePreview: res.Preview,
	})
}
