package session

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/auth"
	"github.com/campushub/campus-events-gateway/internal/config"
	"github.com/campushub/campus-events-gateway/internal/domain"
)

func testToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func newResolveApp() *fiber.App {
	store := NewCookieStore(config.SessionConfig{CookieName: "token", TTLMinutes: 60})
	app := fiber.New()
	app.Use(Resolve(store, auth.NewTokenDecoder(), zap.NewNop()))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sess := FromContext(c)
		if !sess.Authenticated {
			return c.SendString("anonymous")
		}
		return c.SendString(string(sess.User.Role) + ":" + sess.User.Email)
	})
	return app
}

func TestResolve(t *testing.T) {
	app := newResolveApp()

	t.Run("no cookie resolves anonymous", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
		require.NoError(t, err)
		assert.Equal(t, "anonymous", readBody(t, resp))
	})

	t.Run("valid cookie resolves identity", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{
			Name:  "token",
			Value: testToken(`{"sub":"a@a.com","name":"A","role":"STUDENT"}`),
		})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "STUDENT:a@a.com", readBody(t, resp))
	})

	t.Run("malformed cookie resolves anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "anonymous", readBody(t, resp))
	})
}

func TestCookieStore(t *testing.T) {
	store := NewCookieStore(config.SessionConfig{CookieName: "token", TTLMinutes: 60})

	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		store.Set(c, "abc123")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/clear", func(c *fiber.Ctx) error {
		store.Clear(c)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("set writes an http-only site-wide cookie", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/set", nil))
		require.NoError(t, err)

		cookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
		assert.Contains(t, cookie, "token=abc123")
		assert.Contains(t, cookie, "path=/")
		assert.Contains(t, cookie, "httponly")
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/clear", nil))
		require.NoError(t, err)

		cookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
		assert.Contains(t, cookie, "token=")
		assert.Contains(t, cookie, "expires=")
	})
}

func TestSessionReset(t *testing.T) {
	sess := &Session{
		User:          &domain.UserIdentity{Name: "A", Email: "a@a.com", Role: domain.RoleStudent},
		Authenticated: true,
	}
	sess.Reset()
	assert.Nil(t, sess.User)
	assert.False(t, sess.Authenticated)
}
