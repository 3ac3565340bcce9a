package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/askme/internal/service"
)

// RegisterRoutes mounts every endpoint under /api.
func RegisterRoutes(app *fiber.App, answerSvc service.AnswerService, health *HealthHandler) {
	api := app.Group("/api")
	NewAskHandler(answerSvc).Register(api)
	health.Register(api)
}
