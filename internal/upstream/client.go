package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/config"
	"github.com/campushub/campus-events-gateway/internal/domain"
)

// Client talks to the remote REST API that owns accounts, events and
// registrations. The gateway only forwards; it never implements any of
// that business logic itself.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the configured API base URL.
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// RegisterInput is the new-account payload.
type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// OrganizerRequestInput asks for elevation to organizer.
type OrganizerRequestInput struct {
	UserID        string `json:"userId"`
	OrganizerID   string `json:"organizerId"`
	Justification string `json:"justification"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	resp, err := c.post(ctx, "/login", "", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeRejection(resp)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
		return "", fmt.Errorf("%w: login response missing token", ErrMalformedResponse)
	}
	return body.Token, nil
}

// Register creates an account. It never logs the caller in.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	resp, err := c.post(ctx, "/register", "", input)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeRejection(resp)
	}
	return nil
}

// Logout notifies the API that the token's session ended. Callers treat
// this as best-effort.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.post(ctx, "/logout", token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeRejection(resp)
	}
	return nil
}

// ListEvents fetches the event snapshot. The bearer token, when present,
// lets the API flag which events the caller is registered for.
func (c *Client) ListEvents(ctx context.Context, token string) ([]domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/events", token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.decodeRejection(resp)
	}

	var events []domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: events payload: %v", ErrMalformedResponse, err)
	}
	return events, nil
}

// CreateOrganizerRequest forwards an organizer elevation request with
// bearer auth.
func (c *Client) CreateOrganizerRequest(ctx context.Context, token string, input OrganizerRequestInput) error {
	resp, err := c.post(ctx, "/organizer-requests", token, input)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeRejection(resp)
	}
	return nil
}

// Ping reports whether the API answers at all. Any HTTP response counts
// as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", "", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) post(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp, nil
}

// decodeRejection reads a non-OK response. A parseable {message} body
// becomes a Rejection; anything else is a malformed response.
func (c *Client) decodeRejection(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}
	return &Rejection{Status: resp.StatusCode, Message: body.Message}
}
