package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorResponse struct {
	Error string `json:"error"`
}

func TestLoginAction(t *testing.T) {
	t.Run("success sets the cookie and redirects home", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/login", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "fake-token"})
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/login", `{"email":"a@a.com","password":"123"}`))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		cookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
		assert.Contains(t, cookie, "token=fake-token")
		assert.Contains(t, cookie, "httponly")
		assert.Contains(t, cookie, "path=/")
	})

	t.Run("rejection surfaces the message with no cookie and no redirect", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/login", `{"email":"a@a.com","password":"123"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Set-Cookie"))
		assert.Empty(t, resp.Header.Get("Location"))

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "wrong password", body.Error)
	})

	t.Run("unreachable backend says so", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		resp, err := app.Test(jsonRequest("POST", "/auth/login", `{"email":"a@a.com","password":"123"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Contains(t, body.Error, "unreachable")
	})

	t.Run("invalid payload never reaches the backend", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/login", `{"email":"not-an-email","password":"123"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.False(t, called)
	})
}

func TestLogoutAction(t *testing.T) {
	t.Run("clears the cookie and redirects to sign-in", func(t *testing.T) {
		notified := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			notified = true
			assert.Equal(t, "/logout", r.URL.Path)
			assert.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "old-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.True(t, notified)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/signin", resp.Header.Get("Location"))

		cookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
		assert.Contains(t, cookie, "token=")
		assert.Contains(t, cookie, "expires=")
	})

	t.Run("local logout completes even when the backend is down", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "valid-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/signin", resp.Header.Get("Location"))
		assert.Contains(t, strings.ToLower(resp.Header.Get("Set-Cookie")), "expires=")
	})

	t.Run("logout without a session still redirects", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		resp, err := app.Test(httptest.NewRequest("POST", "/auth/logout", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/signin", resp.Header.Get("Location"))
	})
}

func TestRegisterAction(t *testing.T) {
	payload := `{"name":"Test","email":"t@t.com","password":"123456","role":"STUDENT"}`

	t.Run("success redirects to sign-in without authenticating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/register", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Success"})
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/register", payload))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/signin", resp.Header.Get("Location"))
		assert.Empty(t, resp.Header.Get("Set-Cookie"))
	})

	t.Run("rejection surfaces the backend message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/register", payload))
		require.NoError(t, err)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Location"))

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "email already registered", body.Error)
	})

	t.Run("unparseable error body maps to the generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>Internal Server Error</html>"))
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		resp, err := app.Test(jsonRequest("POST", "/auth/register", payload))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "account creation failed, try again", body.Error)
	})

	t.Run("network failure is distinguished from rejection", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		resp, err := app.Test(jsonRequest("POST", "/auth/register", payload))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Contains(t, body.Error, "unreachable")
	})

	t.Run("unknown role is refused locally", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		resp, err := app.Test(jsonRequest("POST", "/auth/register",
			`{"name":"T","email":"t@t.com","password":"123456","role":"ADMIN"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateOrganizerRequestAction(t *testing.T) {
	payload := `{"userId":"u-1","organizerId":"o-1","justification":"community events"}`

	t.Run("without a session the request is refused", func(t *testing.T) {
		app := newGatewayApp(deadServer())

		resp, err := app.Test(jsonRequest("POST", "/organizer-requests", payload))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body errorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "session expired, sign in again", body.Error)
	})

	t.Run("forwards with bearer auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/organizer-requests", r.URL.Path)
			assert.Equal(t, "Bearer "+sessionToken(`{"sub":"a@a.com","name":"A","role":"STUDENT"}`), r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))
		defer server.Close()
		app := newGatewayApp(server.URL)

		req := jsonRequest("POST", "/organizer-requests", payload)
		req.AddCookie(&http.Cookie{Name: "token", Value: sessionToken(`{"sub":"a@a.com","name":"A","role":"STUDENT"}`)})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool `json:"success"`
		}
		decodeBody(t, resp, &body)
		assert.True(t, body.Success)
	})
}
