package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/api/dto"
	"github.com/campushub/campus-events-gateway/internal/service"
	"github.com/campushub/campus-events-gateway/internal/session"
	"github.com/campushub/campus-events-gateway/internal/upstream"
)

// EventsHandler serves the event browsing view.
type EventsHandler struct {
	events  *service.EventsService
	cookies *session.CookieStore
	logger  *zap.Logger
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventsService *service.EventsService, cookies *session.CookieStore, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{events: eventsService, cookies: cookies, logger: logger}
}

// List handles GET /events. Anonymous visitors get the listing too; the
// token is only forwarded so the upstream can mark registrations.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	filter := dto.EventFilterFromQuery(c)
	token, _ := h.cookies.Get(c)

	audience := "anon"
	if sess := session.FromContext(c); sess.Authenticated && sess.User != nil {
		audience = "user:" + sess.User.Email
	}

	listing, err := h.events.Browse(c.UserContext(), token, audience, filter, time.Now())
	if err != nil {
		if errors.Is(err, upstream.ErrUnreachable) {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": msgServerUnreachable})
		}
		h.logger.Error("event listing failed", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "could not load events"})
	}

	return c.JSON(fiber.Map{
		"events": dto.NewEventViews(listing),
		"total":  len(listing),
	})
}
