package handlers

import (
	"context"
	"errors"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/qrcode"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/utils"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrRecyclingPointNotFound),
		errors.Is(err, services.ErrConversationNotFound),
		errors.Is(err, services.ErrAnalysisNotFound),
		errors.Is(err, services.ErrCatalogEmpty):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, session.ErrInvalidTheme),
		errors.Is(err, session.ErrInvalidLocale),
		errors.Is(err, session.ErrInvalidRole),
		errors.Is(err, wizard.ErrInvalidForm),
		errors.Is(err, qrcode.ErrEmptyContent):
		return fiber.StatusBadRequest
	case errors.Is(err, wizard.ErrStepOutOfRange):
		return fiber.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusRequestTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		utils.LogError("request failed", err, map[string]interface{}{"path": c.Path()})
		return c.Status(status).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

// currentSession returns the session resolved by the session middleware
func currentSession(c *fiber.Ctx) session.Session {
	sess, _ := session.FromContext(c)
	return sess
}
