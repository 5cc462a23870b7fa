package handler

import (
	"errors"

	"jobboard-ai/internal/delivery/http/dto"
	"jobboard-ai/internal/delivery/http/middleware"
	"jobboard-ai/internal/pkg/response"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScamHandler struct {
	uc usecase.ScamDetectionUsecase
}

type detectScamRequest struct {
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	CompanyName    string `json:"companyName"`
}

func NewScamHandler(uc usecase.ScamDetectionUsecase) *ScamHandler {
	return &ScamHandler{uc: uc}
}

func (h *ScamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/detect-scam", h.DetectScam)
}

func (h *ScamHandler) DetectScam(c fiber.Ctx) error {
	var req detectScamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job title or description is required for scam detection.", nil, err)
	}

	res, err := h.uc.Detect(c.Context(), req.JobTitle, req.JobDescription, req.CompanyName)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Job title or description is required for scam detection.", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ScamDetectionResponse{
		IsSuspicious: res.IsSuspicious,
		Score:        res.Score,
		Flags:        res.Flags,
	})
}
