package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/askme/internal/models"
)

type HealthHandler struct {
	provider string
	model    string
}

func NewHealthHandler(provider, model string) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		model:    model,
	}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:   "ok",
		Provider: h.provider,
		Model:    h.model,
	})
}
