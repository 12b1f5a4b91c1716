package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-events-gateway/internal/domain"
)

// Browser routes the guard sends unauthorized visitors to. Both are
// rendered by the static frontend, not by this service.
const (
	SignInRoute = "/signin"
	EventsRoute = "/events"
)

// RequireRoles guards a route by role. Unauthenticated visitors are sent
// to the sign-in page; authenticated visitors whose role is not allowed
// are sent back to the events listing. With no roles given, any
// authenticated visitor passes.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		sess := FromContext(c)
		if !sess.Authenticated || sess.User == nil {
			return c.Redirect(SignInRoute, fiber.StatusSeeOther)
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, ok := allowedSet[sess.User.Role]; !ok {
			return c.Redirect(EventsRoute, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
