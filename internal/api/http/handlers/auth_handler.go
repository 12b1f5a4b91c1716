package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/api/dto"
	"github.com/campushub/campus-events-gateway/internal/domain"
	"github.com/campushub/campus-events-gateway/internal/events"
	"github.com/campushub/campus-events-gateway/internal/session"
	"github.com/campushub/campus-events-gateway/internal/upstream"
)

// Browser-facing messages for failures the upstream cannot phrase itself.
const (
	msgServerUnreachable = "server unreachable, try again later"
	msgSignInFallback    = "sign in failed, try again"
	msgRegisterFallback  = "account creation failed, try again"
	msgRequestFallback   = "request submission failed, try again"
	msgSessionExpired    = "session expired, sign in again"
)

const landingRoute = "/"

// AuthHandler exposes the login, logout and register actions. Every
// failure resolves to an {error} body; nothing here ever surfaces a raw
// error to the browser.
type AuthHandler struct {
	api        *upstream.Client
	cookies    *session.CookieStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(api *upstream.Client, cookies *session.CookieStore, dispatcher events.Dispatcher, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{api: api, cookies: cookies, dispatcher: dispatcher, logger: logger}
}

// Login handles POST /auth/login. On success the token lands in the
// session cookie and the browser is sent to the landing page. On
// rejection nothing is mutated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := h.api.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.publish(c, events.ActivityLoginFailed, req.Email, "")
		return h.actionError(c, err, msgSignInFallback)
	}

	h.cookies.Set(c, token)
	h.publish(c, events.ActivityLogin, req.Email, "")
	return c.Redirect(landingRoute, fiber.StatusSeeOther)
}

// Logout handles POST /auth/logout. The upstream notification is
// best-effort; the local session always ends and the browser always
// lands on the sign-in page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	email := ""
	if sess.User != nil {
		email = sess.User.Email
	}

	if token, ok := h.cookies.Get(c); ok {
		if err := h.api.Logout(c.UserContext(), token); err != nil {
			h.logger.Warn("upstream logout failed", zap.Error(err))
		}
	}

	h.cookies.Clear(c)
	sess.Reset()
	h.publish(c, events.ActivityLogout, email, "")
	return c.Redirect(session.SignInRoute, fiber.StatusSeeOther)
}

// Register handles POST /auth/register. Success sends the browser to the
// sign-in page; registration never authenticates by itself.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := h.api.Register(c.UserContext(), upstream.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return h.actionError(c, err, msgRegisterFallback)
	}

	h.publish(c, events.ActivityRegister, req.Email, "")
	return c.Redirect(session.SignInRoute, fiber.StatusSeeOther)
}

// CreateOrganizerRequest handles POST /organizer-requests, forwarding the
// elevation request with bearer auth.
func (h *AuthHandler) CreateOrganizerRequest(c *fiber.Ctx) error {
	token, ok := h.cookies.Get(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msgSessionExpired})
	}

	var req dto.OrganizerRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := h.api.CreateOrganizerRequest(c.UserContext(), token, upstream.OrganizerRequestInput{
		UserID:        req.UserID,
		OrganizerID:   req.OrganizerID,
		Justification: req.Justification,
	})
	if err != nil {
		return h.actionError(c, err, msgRequestFallback)
	}

	sess := session.FromContext(c)
	email := ""
	if sess.User != nil {
		email = sess.User.Email
	}
	h.publish(c, events.ActivityOrganizerRequest, email, "organizer="+req.OrganizerID)
	return c.JSON(fiber.Map{"success": true})
}

// actionError maps the upstream error taxonomy onto the flat {error}
// contract: rejections keep their message and status, transport failures
// say the server is unreachable, anything else gets the caller's
// fallback message.
func (h *AuthHandler) actionError(c *fiber.Ctx, err error, fallback string) error {
	if rejection, ok := upstream.AsRejection(err); ok {
		return c.Status(rejection.Status).JSON(fiber.Map{"error": rejection.Message})
	}
	if errors.Is(err, upstream.ErrUnreachable) {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": msgServerUnreachable})
	}
	h.logger.Error("upstream call failed", zap.Error(err))
	return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": fallback})
}

func (h *AuthHandler) publish(c *fiber.Ctx, activityType events.ActivityType, email, detail string) {
	_ = h.dispatcher.Publish(c.UserContext(), events.Activity{
		ID:        uuid.NewString(),
		Type:      activityType,
		Email:     email,
		Detail:    detail,
		Timestamp: time.Now(),
	})
}
