package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-events-gateway/internal/config"
)

// CookieStore manages the single session cookie holding the bearer token.
// It is a server-side capability only: the cookie is http-only and scoped
// site-wide, so page scripts never see the token.
type CookieStore struct {
	name   string
	maxAge time.Duration
	secure bool
}

// NewCookieStore builds the store from session configuration.
func NewCookieStore(cfg config.SessionConfig) *CookieStore {
	return &CookieStore{name: cfg.CookieName, maxAge: cfg.TTL(), secure: cfg.Secure}
}

// Name returns the cookie name.
func (s *CookieStore) Name() string {
	return s.name
}

// Set writes the token into the session cookie.
func (s *CookieStore) Set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Get returns the current token value, if any.
func (s *CookieStore) Get(c *fiber.Ctx) (string, bool) {
	value := c.Cookies(s.name)
	return value, value != ""
}

// Clear expires the session cookie.
func (s *CookieStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
