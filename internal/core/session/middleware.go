package session

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/gofiber/fiber/v2"
)

// Header carries the session id on every session-scoped request
const Header = "X-Session-ID"

const localsKey = "session"

// Middleware resolves the X-Session-ID header to a live session
func Middleware(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing " + Header + " header",
			})
		}

		sess, err := store.Get(id)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown or expired session",
			})
		}

		c.Locals(localsKey, sess)
		return c.Next()
	}
}

// FromContext returns the session resolved by Middleware
func FromContext(c *fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(localsKey).(Session)
	return sess, ok
}

// RequireRole lets through signed-in sessions holding one of the roles. It
// gates screens, it is not access control.
func RequireRole(roles ...navigation.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := FromContext(c)
		if !ok || !sess.IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sign in required",
			})
		}

		for _, role := range roles {
			if sess.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}
