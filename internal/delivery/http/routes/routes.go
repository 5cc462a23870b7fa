package routes

import (
	"jobboard-ai/internal/database"
	"jobboard-ai/internal/delivery/http/handler"
	v1 "jobboard-ai/internal/delivery/http/routes/v1"
	"jobboard-ai/internal/events"
	"jobboard-ai/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Register wires the public HTTP surface: health, the events websocket,
// and the versioned AI scoring API.
func Register(app *fiber.App, db database.DB, publisher events.Publisher, wsHandler *ws.Handler, logger *zap.Logger) {
	if app == nil {
		return
	}

	healthHandler := handler.NewHealthHandler()
	healthHandler.RegisterRoutes(app)

	if wsHandler != nil {
		app.Get("/ws/events", wsHandler.HandleEventsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), db, publisher, logger)
}
