package v1

import (
	"jobboard-ai/internal/database"
	"jobboard-ai/internal/delivery/http/handler"
	"jobboard-ai/internal/events"
	"jobboard-ai/internal/keywords"
	"jobboard-ai/internal/repository"
	"jobboard-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func Register(r fiber.Router, db database.DB, publisher events.Publisher, logger *zap.Logger) {
	if r == nil {
		return
	}

	profileRepo := repository.NewPostgresProfileRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)

	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, jobRepo)
	scamUC := usecase.NewScamDetectionUsecase()
	screeningUC := usecase.NewScreeningUsecase(profileRepo, jobRepo)
	tailoringUC := usecase.NewTailoringUsecase(profileRepo, jobRepo, keywords.Extract)
	notificationUC := usecase.NewNotificationUsecase(publisher, logger)

	ai := r.Group("/ai")

	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(ai)
	handler.NewScamHandler(scamUC).RegisterRoutes(ai)
	handler.NewScreeningHandler(screeningUC).RegisterRoutes(ai)
	handler.NewTailoringHandler(tailoringUC).RegisterRoutes(ai)
	handler.NewNotificationHandler(notificationUC).RegisterRoutes(ai)
}
