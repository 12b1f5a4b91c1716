package session

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/auth"
	"github.com/campushub/campus-events-gateway/internal/domain"
)

const sessionKey = "session_state"

// Session is the explicit per-request authentication state. It is
// hydrated exactly once, by Resolve, before any handler runs; everything
// downstream reads the same instance. A decode failure or missing cookie
// yields the anonymous state rather than an error.
type Session struct {
	User          *domain.UserIdentity
	Authenticated bool
}

// Reset clears the state back to anonymous.
func (s *Session) Reset() {
	s.User = nil
	s.Authenticated = false
}

// Resolve returns the middleware that hydrates the request session from
// the cookie-held token. It is the single writer of session state.
func Resolve(store *CookieStore, decoder *auth.TokenDecoder, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := &Session{}
		if token, ok := store.Get(c); ok {
			identity, err := decoder.DecodeIdentity(token)
			if err != nil {
				logger.Warn("session token decode failed", zap.Error(err))
			} else {
				sess.User = identity
				sess.Authenticated = true
			}
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// FromContext retrieves the request session, or the anonymous session
// when resolution did not run.
func FromContext(c *fiber.Ctx) *Session {
	if sess, ok := c.Locals(sessionKey).(*Session); ok {
		return sess
	}
	return &Session{}
}
