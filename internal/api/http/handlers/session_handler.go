package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-events-gateway/internal/session"
)

// SessionHandler answers the one question the page asks on load: who is
// signed in. It only reads the locally decoded session and never calls
// the upstream API.
type SessionHandler struct{}

// NewSessionHandler returns a new handler instance.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Me handles GET /api/me. The id claim stays internal; the page only
// needs name, email and role.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	if !sess.Authenticated || sess.User == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"user": nil})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"name":  sess.User.Name,
			"email": sess.User.Email,
			"role":  sess.User.Role,
		},
	})
}
