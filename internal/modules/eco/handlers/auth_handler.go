package handlers

import (
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/gofiber/fiber/v2"
)

type SignupRequest struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Role     string `json:"role,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after signing in
type AuthResponse struct {
	SessionResponse
	Name  string          `json:"name,omitempty"`
	Email string          `json:"email,omitempty"`
	Home  navigation.Page `json:"home"`
}

// AuthHandler flips the session's sign-in state. No credentials are
// checked.
type AuthHandler struct {
	sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Signup godoc
// @Summary Sign up
// @Description Choose a role and sign in; returns the role's landing page
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body SignupRequest true "Signup details"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	role, ok := navigation.ParseRole(strings.TrimSpace(req.Role))
	if !ok || role == navigation.RoleNone {
		return respondError(c, session.ErrInvalidRole)
	}

	return h.signIn(c, role, strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
}

// Login godoc
// @Summary Log in
// @Description Sign in with the given role, or the session's current role, or client
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body LoginRequest true "Login details"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	role, ok := navigation.ParseRole(strings.TrimSpace(req.Role))
	if !ok {
		return respondError(c, session.ErrInvalidRole)
	}
	if role == navigation.RoleNone {
		role = currentSession(c).Role
	}
	if role == navigation.RoleNone {
		role = navigation.RoleClient
	}

	return h.signIn(c, role, "", strings.TrimSpace(req.Email))
}

func (h *AuthHandler) signIn(c *fiber.Ctx, role navigation.Role, name, email string) error {
	sess, err := h.sessions.SignIn(currentSession(c).ID, role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(AuthResponse{
		SessionResponse: newSessionResponse(sess),
		Name:            name,
		Email:           email,
		Home:            role.Home(),
	})
}

// Logout godoc
// @Summary Log out
// @Description Clear the sign-in flag and role and return to the landing page
// @Tags Auth
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} SessionResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.SignOut(currentSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(newSessionResponse(sess))
}
