package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/askme/internal/models"
	"github.com/ahmednasr/askme/internal/retry"
	"github.com/ahmednasr/askme/internal/service"
)

const (
	msgOnlyPost    = "Only POST requests allowed"
	msgUnavailable = "The model is unavailable right now. Please try again."
)

// AskHandler wires HTTP → AnswerService.
type AskHandler struct {
	svc service.AnswerService
}

// NewAskHandler returns a struct pointer so you can call Register on it.
func NewAskHandler(svc service.AnswerService) *AskHandler {
	return &AskHandler{svc: svc}
}

// Register mounts the /ask endpoint on the supplied router group. Every
// method is routed here so non‑POST requests get the JSON 405.
func (h *AskHandler) Register(r fiber.Router) {
	r.All("/ask", h.ask)
}

// ask handles POST /ask  { "question": "..." }
func (h *AskHandler) ask(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{Message: msgOnlyPost})
	}

	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question is required")
	}

	// Delegate to service layer.
	answer, err := h.svc.Ask(c.UserContext(), req.Question)
	switch {
	case err == nil:
	case errors.Is(err, retry.ErrExhausted):
		return fiber.NewError(fiber.StatusBadGateway, msgUnavailable)
	case errors.Is(err, service.ErrEmptyQuestion):
		return fiber.NewError(fiber.StatusBadRequest, "question is required")
	default:
		// Non-fiber errors reach ErrorHandler as a logged, generic 500.
		return fmt.Errorf("ask: %w", err)
	}

	return c.JSON(models.AskResponse{Answer: answer})
}
