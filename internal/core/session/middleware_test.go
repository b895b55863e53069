package session

import (
	"net/http/httptest"
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	store := NewStore()
	founder := store.Create("")
	_, err := store.SignIn(founder.ID, navigation.RoleFounder)
	require.NoError(t, err)
	client := store.Create("")
	_, err = store.SignIn(client.ID, navigation.RoleClient)
	require.NoError(t, err)
	anonymous := store.Create("")

	app := fiber.New()
	app.Use(Middleware(store))
	app.Get("/me", func(c *fiber.Ctx) error {
		sess, _ := FromContext(c)
		return c.SendString(sess.ID)
	})
	app.Get("/founder", RequireRole(navigation.RoleFounder), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name      string
		path      string
		sessionID string
		want      int
	}{
		{name: "missing header", path: "/me", want: fiber.StatusUnauthorized},
		{name: "unknown session", path: "/me", sessionID: "nope", want: fiber.StatusUnauthorized},
		{name: "known session", path: "/me", sessionID: anonymous.ID, want: fiber.StatusOK},
		{name: "founder route as founder", path: "/founder", sessionID: founder.ID, want: fiber.StatusNoContent},
		{name: "founder route as client", path: "/founder", sessionID: client.ID, want: fiber.StatusForbidden},
		{name: "founder route signed out", path: "/founder", sessionID: anonymous.ID, want: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.sessionID != "" {
				req.Header.Set(Header, tt.sessionID)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
