package session

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-events-gateway/internal/domain"
)

func withSession(sess *Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

func newGuardedApp(sess *Session, allowed ...domain.Role) *fiber.App {
	app := fiber.New()
	app.Use(withSession(sess))
	app.Get("/admin", RequireRoles(allowed...), func(c *fiber.Ctx) error {
		return c.SendString("granted")
	})
	return app
}

func TestRequireRoles(t *testing.T) {
	t.Run("unauthenticated visitors are sent to sign-in", func(t *testing.T) {
		app := newGuardedApp(&Session{}, domain.RoleAdmin)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, SignInRoute, resp.Header.Get("Location"))
	})

	t.Run("disallowed role is sent to the events page", func(t *testing.T) {
		sess := &Session{
			User:          &domain.UserIdentity{Name: "A", Email: "a@a.com", Role: domain.RoleStudent},
			Authenticated: true,
		}
		app := newGuardedApp(sess, domain.RoleOrganizer, domain.RoleAdmin)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, EventsRoute, resp.Header.Get("Location"))
	})

	t.Run("allowed role passes through", func(t *testing.T) {
		sess := &Session{
			User:          &domain.UserIdentity{Name: "A", Email: "a@a.com", Role: domain.RoleAdmin},
			Authenticated: true,
		}
		app := newGuardedApp(sess, domain.RoleOrganizer, domain.RoleAdmin)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("no roles listed admits any authenticated visitor", func(t *testing.T) {
		sess := &Session{
			User:          &domain.UserIdentity{Name: "A", Email: "a@a.com", Role: domain.RoleStudent},
			Authenticated: true,
		}
		app := newGuardedApp(sess)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
