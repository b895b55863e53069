package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/gofiber/fiber/v2"
)

type MessageRequest struct {
	Content string `json:"content"`
}

// ExchangeResponse is one user message with the assistant's answer
type ExchangeResponse struct {
	User      assistant.Message `json:"user"`
	Assistant assistant.Message `json:"assistant"`
}

type AssistantHandler struct {
	transcripts      *assistant.Transcripts
	assistantService *assistant.Service
}

func NewAssistantHandler(transcripts *assistant.Transcripts, assistantService *assistant.Service) *AssistantHandler {
	return &AssistantHandler{transcripts: transcripts, assistantService: assistantService}
}

// GetMessages godoc
// @Summary Chat transcript
// @Description The session's conversation with the assistant, starting with its greeting
// @Tags Assistant
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {array} assistant.Message
// @Router /assistant/messages [get]
func (h *AssistantHandler) GetMessages(c *fiber.Ctx) error {
	return c.JSON(h.transcripts.Messages(currentSession(c).ID))
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Append the message and the assistant's answer to the transcript. Blank messages are rejected and nothing is recorded.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body MessageRequest true "Message"
// @Success 201 {object} ExchangeResponse
// @Failure 400 {object} map[string]interface{}
// @Router /assistant/messages [post]
func (h *AssistantHandler) SendMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, answer, err := h.transcripts.Send(c.UserContext(), currentSession(c).ID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ExchangeResponse{User: user, Assistant: answer})
}

// Respond godoc
// @Summary Assistant reply
// @Description Stateless keyword reply with an optional product suggestion
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body MessageRequest true "Message"
// @Success 200 {object} assistant.Reply
// @Failure 400 {object} map[string]interface{}
// @Router /assistant/respond [post]
func (h *AssistantHandler) Respond(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	reply, err := h.assistantService.Reply(c.UserContext(), req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reply)
}
