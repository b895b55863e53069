package handlers

import (
	"errors"
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

// SessionResponse is a session with its resolved screen
type SessionResponse struct {
	Session session.Session `json:"session"`
	View    navigation.View `json:"view"`
}

func newSessionResponse(sess session.Session) SessionResponse {
	return SessionResponse{Session: sess, View: sess.View()}
}

type LocaleRequest struct {
	Locale string `json:"locale"`
}

type RoleRequest struct {
	Role string `json:"role"`
}

type NavigateRequest struct {
	Page      string `json:"page"`
	ProductID string `json:"product_id,omitempty"`
}

type SessionHandler struct {
	sessions       *session.Store
	productService *services.ProductService
}

func NewSessionHandler(sessions *session.Store, productService *services.ProductService) *SessionHandler {
	return &SessionHandler{sessions: sessions, productService: productService}
}

// CreateSession godoc
// @Summary Start a session
// @Description Create a UI session on the landing page with the first catalog product selected
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var selected string
	product, err := h.productService.DefaultProduct()
	switch {
	case err == nil:
		selected = product.ID
	case !errors.Is(err, services.ErrCatalogEmpty):
		return respondError(c, err)
	}

	sess := h.sessions.Create(selected)
	c.Set(session.Header, sess.ID)
	return c.Status(fiber.StatusCreated).JSON(newSessionResponse(sess))
}

// GetSession godoc
// @Summary Get the current session
// @Tags Sessions
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]interface{}
// @Router /sessions/current [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(newSessionResponse(currentSession(c)))
}

// ToggleTheme godoc
// @Summary Toggle light/dark theme
// @Tags Sessions
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} SessionResponse
// @Router /sessions/current/theme [patch]
func (h *SessionHandler) ToggleTheme(c *fiber.Ctx) error {
	sess, err := h.sessions.ToggleTheme(currentSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionResponse(sess))
}

// SetLocale godoc
// @Summary Change language
// @Description Set the locale to en, fr or ar; ar switches the layout to rtl
// @Tags Sessions
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body LocaleRequest true "Locale"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Router /sessions/current/locale [put]
func (h *SessionHandler) SetLocale(c *fiber.Ctx) error {
	var req LocaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	locale, err := session.ParseLocale(strings.TrimSpace(req.Locale))
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.sessions.SetLocale(currentSession(c).ID, locale)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionResponse(sess))
}

// SetRole godoc
// @Summary Change role
// @Description Set the role to founder, client or empty without signing in
// @Tags Sessions
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body RoleRequest true "Role"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Router /sessions/current/role [put]
func (h *SessionHandler) SetRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	role, ok := navigation.ParseRole(strings.TrimSpace(req.Role))
	if !ok {
		return respondError(c, session.ErrInvalidRole)
	}

	sess, err := h.sessions.SetRole(currentSession(c).ID, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionResponse(sess))
}

// Navigate godoc
// @Summary Navigate to a page
// @Description Move the session to a page. Unknown pages fall back to the landing page. A product_id of an existing product becomes the selected product and counts a view.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body NavigateRequest true "Target page"
// @Success 200 {object} SessionResponse
// @Router /sessions/current/navigate [post]
func (h *SessionHandler) Navigate(c *fiber.Ctx) error {
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID != "" {
		err := h.productService.RecordView(productID)
		if errors.Is(err, services.ErrProductNotFound) {
			productID = ""
		} else if err != nil {
			return respondError(c, err)
		}
	}

	sess, err := h.sessions.Navigate(currentSession(c).ID, navigation.Page(strings.TrimSpace(req.Page)), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionResponse(sess))
}

// DeleteSession godoc
// @Summary End the session
// @Description Drop the session with its transcript, wizard draft and scan history
// @Tags Sessions
// @Param X-Session-ID header string true "Session ID"
// @Success 204
// @Router /sessions/current [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	h.sessions.Delete(currentSession(c).ID)
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMenu godoc
// @Summary Sidebar menu
// @Description Menu links for the session's role
// @Tags Navigation
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {array} navigation.MenuItem
// @Router /navigation/menu [get]
func (h *SessionHandler) GetMenu(c *fiber.Ctx) error {
	return c.JSON(navigation.Menu(currentSession(c).Role))
}
