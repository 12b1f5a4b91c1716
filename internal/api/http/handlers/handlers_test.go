package handlers_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/api/http/handlers"
	"github.com/campushub/campus-events-gateway/internal/auth"
	"github.com/campushub/campus-events-gateway/internal/config"
	"github.com/campushub/campus-events-gateway/internal/events"
	"github.com/campushub/campus-events-gateway/internal/service"
	"github.com/campushub/campus-events-gateway/internal/session"
	"github.com/campushub/campus-events-gateway/internal/upstream"
)

// newGatewayApp wires the handlers against the given upstream base URL,
// mirroring the route layout in the router.
func newGatewayApp(apiURL string) *fiber.App {
	logger := zap.NewNop()
	client := upstream.NewClient(config.APIConfig{BaseURL: apiURL, TimeoutSeconds: 2}, logger)
	cookies := session.NewCookieStore(config.SessionConfig{CookieName: "token", TTLMinutes: 60})
	dispatcher := events.NewInMemoryDispatcher()

	authHandler := handlers.NewAuthHandler(client, cookies, dispatcher, logger)
	sessionHandler := handlers.NewSessionHandler()
	eventsHandler := handlers.NewEventsHandler(service.NewEventsService(client, nil, logger), cookies, logger)

	app := fiber.New()
	app.Use(session.Resolve(cookies, auth.NewTokenDecoder(), logger))
	app.Get("/api/me", sessionHandler.Me)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/logout", authHandler.Logout)
	app.Get("/events", eventsHandler.List)
	app.Post("/organizer-requests", authHandler.CreateOrganizerRequest)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

// deadServer returns a base URL nothing listens on.
func deadServer() string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return server.URL
}
