package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	assistantService *assistant.Service
	sessions         *session.Store
}

func NewHealthHandler(assistantService *assistant.Service, sessions *session.Store) *HealthHandler {
	return &HealthHandler{assistantService: assistantService, sessions: sessions}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "ecoscan-api",
		"provider": h.assistantService.GetProviderName(),
		"sessions": h.sessions.Count(),
	})
}
