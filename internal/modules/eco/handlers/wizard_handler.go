package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

// ApplySuggestionRequest has the shape of an assistant suggestion
type ApplySuggestionRequest struct {
	Capacity   int                   `json:"capacity"`
	Dimensions *assistant.Dimensions `json:"dimensions,omitempty"`
}

type WizardHandler struct {
	wizardService *services.WizardService
}

func NewWizardHandler(wizardService *services.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// GetWizard godoc
// @Summary Product creator draft
// @Tags Wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} services.WizardState
// @Router /wizard [get]
func (h *WizardHandler) GetWizard(c *fiber.Ctx) error {
	return c.JSON(h.wizardService.Get(currentSession(c).ID))
}

// Next godoc
// @Summary Next wizard step
// @Description Advance one step. On the publish step the draft is saved as a draft product.
// @Tags Wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} services.WizardState
// @Success 201 {object} services.WizardState
// @Router /wizard/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	state, err := h.wizardService.Next(currentSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	if state.Completed {
		return c.Status(fiber.StatusCreated).JSON(state)
	}
	return c.JSON(state)
}

// Back godoc
// @Summary Previous wizard step
// @Tags Wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} services.WizardState
// @Failure 409 {object} map[string]interface{}
// @Router /wizard/back [post]
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	state, err := h.wizardService.Back(currentSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

// ApplySuggestion godoc
// @Summary Apply an assistant suggestion
// @Description Copy the suggested capacity and dimensions into the draft; zero values are ignored
// @Tags Wizard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body ApplySuggestionRequest true "Suggestion"
// @Success 200 {object} services.WizardState
// @Router /wizard/apply-suggestion [post]
func (h *WizardHandler) ApplySuggestion(c *fiber.Ctx) error {
	var req ApplySuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	suggestion := wizard.Suggestion{Capacity: req.Capacity}
	if req.Dimensions != nil {
		suggestion.Height = req.Dimensions.Height
		suggestion.Width = req.Dimensions.Width
		suggestion.Depth = req.Dimensions.Depth
	}
	return c.JSON(h.wizardService.ApplySuggestion(currentSession(c).ID, suggestion))
}

// UpdateForm godoc
// @Summary Edit the draft
// @Description Partial update of the product form; omitted fields are kept
// @Tags Wizard
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body wizard.FormUpdate true "Form fields"
// @Success 200 {object} services.WizardState
// @Failure 400 {object} map[string]interface{}
// @Router /wizard/form [put]
func (h *WizardHandler) UpdateForm(c *fiber.Ctx) error {
	var req wizard.FormUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	state, err := h.wizardService.UpdateForm(currentSession(c).ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

// GetMaterials godoc
// @Summary Material recommendations
// @Description Material options matching the draft's material
// @Tags Wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {array} models.MaterialOption
// @Router /wizard/materials [get]
func (h *WizardHandler) GetMaterials(c *fiber.Ctx) error {
	return c.JSON(h.wizardService.MaterialRecommendations(currentSession(c).ID))
}

// Reset godoc
// @Summary Discard the draft
// @Tags Wizard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} services.WizardState
// @Router /wizard [delete]
func (h *WizardHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.wizardService.Reset(currentSession(c).ID))
}
