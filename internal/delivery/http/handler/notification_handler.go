package handler

import (
	"errors"

	"jobboard-ai/internal/delivery/http/middleware"
	"jobboard-ai/internal/pkg/response"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

type updateProfileRequest struct {
	UserID             string         `json:"userId"`
	UpdatedProfileData map[string]any `json:"updatedProfileData"`
}

type newApplicationRequest struct {
	ApplicationID string `json:"applicationId"`
	UserID        string `json:"userId"`
	JobID         string `json:"jobId"`
}

type jobInteractionRequest struct {
	UserID string `json:"userId"`
	JobID  string `json:"jobId"`
	Type   string `json:"type"`
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/update-user-profile", h.UpdateUserProfile)
	r.Post("/notify-new-application", h.NotifyNewApplication)
	r.Post("/notify-job-interaction", h.NotifyJobInteraction)
}

func (h *NotificationHandler) UpdateUserProfile(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and updatedProfileData are required.", nil, err)
	}

	if err := h.uc.ProfileUpdated(c.Context(), req.UserID, req.UpdatedProfileData); err != nil {
		return mapNotificationError(err, "userId and updatedProfileData are required.")
	}
	return response.Success(c, fiber.StatusOK, "User profile update notification received by AI service.", nil)
}

func (h *NotificationHandler) NotifyNewApplication(c fiber.Ctx) error {
	var req newApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "applicationId, userId, and jobId are required.", nil, err)
	}

	if err := h.uc.ApplicationReceived(c.Context(), req.ApplicationID, req.UserID, req.JobID); err != nil {
		return mapNotificationError(err, "applicationId, userId, and jobId are required.")
	}
	return response.Success(c, fiber.StatusOK, "New application notification received by AI service.", nil)
}

func (h *NotificationHandler) NotifyJobInteraction(c fiber.Ctx) error {
	var req jobInteractionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId, jobId, and type are required.", nil, err)
	}

	if err := h.uc.JobInteraction(c.Context(), req.UserID, req.JobID, req.Type); err != nil {
		return mapNotificationError(err, "userId, jobId, and type are required.")
	}
	return response.Success(c, fiber.StatusOK, "Job interaction notification received by AI service.", nil)
}

func mapNotificationError(err error, badRequestMsg string) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, badRequestMsg, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
