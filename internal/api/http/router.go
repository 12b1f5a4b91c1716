package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushub/campus-events-gateway/internal/api/http/handlers"
	"github.com/campushub/campus-events-gateway/internal/domain"
	"github.com/campushub/campus-events-gateway/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Session         *handlers.SessionHandler
	Auth            *handlers.AuthHandler
	Events          *handlers.EventsHandler
	SessionResolver fiber.Handler
}

// RegisterRoutes wires HTTP routes. Health probes stay outside session
// resolution; everything else sees the hydrated session.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Use(cfg.SessionResolver)

	app.Get("/api/me", cfg.Session.Me)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)

	app.Get("/events", cfg.Events.List)
	app.Post("/organizer-requests", cfg.Auth.CreateOrganizerRequest)

	organizer := app.Group("/organizer", session.RequireRoles(domain.RoleOrganizer, domain.RoleAdmin))
	organizer.Get("/events", cfg.Events.List)
}
