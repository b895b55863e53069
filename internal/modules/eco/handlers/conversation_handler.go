package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ListConversations godoc
// @Summary List AI conversations
// @Tags Assistant
// @Produce json
// @Param status query string false "active, completed or archived"
// @Param limit query int false "Maximum number of conversations"
// @Success 200 {array} models.ConversationSummary
// @Failure 400 {object} map[string]interface{}
// @Router /conversations [get]
func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	status := models.ConversationStatus(c.Query("status"))
	switch status {
	case "", models.ConversationActive, models.ConversationCompleted, models.ConversationArchived:
	default:
		return badRequest(c, "status must be active, completed or archived")
	}

	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return badRequest(c, "limit must not be negative")
	}

	convs, err := h.conversationService.ListConversations(status, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convs)
}

// GetConversation godoc
// @Summary Get AI conversation
// @Tags Assistant
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} models.AIConversation
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *fiber.Ctx) error {
	conv, err := h.conversationService.GetConversation(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(conv)
}

// GetAnalysis godoc
// @Summary Product sustainability analysis
// @Tags Assistant
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.AIAnalysis
// @Failure 404 {object} map[string]interface{}
// @Router /ai/analyses/{productId} [get]
func (h *ConversationHandler) GetAnalysis(c *fiber.Ctx) error {
	analysis, err := h.conversationService.GetAnalysis(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(analysis)
}

// GetSuggestions godoc
// @Summary Assistant recommendation tables
// @Description Material options, dimension presets and sustainability features
// @Tags Assistant
// @Produce json
// @Success 200 {object} models.SuggestionCatalog
// @Router /ai/suggestions [get]
func (h *ConversationHandler) GetSuggestions(c *fiber.Ctx) error {
	return c.JSON(h.conversationService.Suggestions())
}
