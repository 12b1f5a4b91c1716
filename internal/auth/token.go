package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/campushub/campus-events-gateway/internal/domain"
)

// ErrEmptyToken is returned when no token value is supplied.
var ErrEmptyToken = errors.New("empty token")

// SessionClaims is the payload the identity backend places in its tokens.
// The subject carries the email; id may be a string or a number.
type SessionClaims struct {
	UserID any    `json:"id,omitempty"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityID renders the id claim as a string, or "" when absent.
func (c *SessionClaims) IdentityID() string {
	if c.UserID == nil {
		return ""
	}
	return fmt.Sprint(c.UserID)
}

// Identity maps the claims onto the domain identity.
func (c *SessionClaims) Identity() *domain.UserIdentity {
	return &domain.UserIdentity{
		ID:    c.IdentityID(),
		Name:  c.Name,
		Email: c.Subject,
		Role:  domain.Role(c.Role),
	}
}

// Expiry returns the exp claim, or the zero time when absent.
func (c *SessionClaims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// TokenDecoder extracts identity from a bearer token without verifying
// its signature. The trust boundary is the issuing backend: tokens only
// reach this process over the session cookie it set itself, and expiry
// is enforced upstream on every forwarded call.
type TokenDecoder struct {
	parser *jwt.Parser
}

// NewTokenDecoder builds a decoder tolerant of padded payload segments.
func NewTokenDecoder() *TokenDecoder {
	return &TokenDecoder{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// DecodeClaims parses the token structure and payload. It fails on wrong
// segment count, invalid base64 or invalid JSON, but does not reject
// expired tokens.
func (d *TokenDecoder) DecodeClaims(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	claims := &SessionClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// DecodeIdentity is the lightweight path: payload to identity, ignoring exp.
func (d *TokenDecoder) DecodeIdentity(token string) (*domain.UserIdentity, error) {
	claims, err := d.DecodeClaims(token)
	if err != nil {
		return nil, err
	}
	return claims.Identity(), nil
}
