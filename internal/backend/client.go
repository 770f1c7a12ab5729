// Package backend is the single boundary to the remote tournament backend.
// The backend is six independently deployed HTTP functions; everything in
// this gateway that looks like a repository is a thin wrapper around this
// client. Authentication is endpoint-specific and carried via custom headers.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/riftcup/gateway/config"
)

// Custom auth headers understood by the backend. There is no unified scheme:
// the admin endpoints read X-Auth-Token or X-Admin-Token, captain self-service
// reads X-Session-Token.
const (
	HeaderAuthToken    = "X-Auth-Token"
	HeaderAdminToken   = "X-Admin-Token"
	HeaderSessionToken = "X-Session-Token"
)

// APIError is a non-OK response from the backend. Message is the backend's
// own error string, surfaced verbatim to the UI when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.StatusCode)
}

// UserMessage returns the backend's error message when err wraps an APIError
// carrying one, otherwise the generic fallback. Network and decode failures
// always map to the fallback (spec'd error taxonomy: backend message verbatim
// when present, generic string otherwise).
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Request describes one call to an upstream function.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
	Body   interface{} // JSON-encoded when non-nil
}

// Client talks to the six backend endpoints.
type Client struct {
	httpClient *http.Client

	AuthURL     string
	UserAuthURL string
	TeamsURL    string
	RegisterURL string
	SettingsURL string
	ScheduleURL string
}

// NewClient builds a client from the loaded configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		AuthURL:     cfg.Backend.AuthURL,
		UserAuthURL: cfg.Backend.UserAuthURL,
		TeamsURL:    cfg.Backend.TeamsURL,
		RegisterURL: cfg.Backend.RegisterURL,
		SettingsURL: cfg.Backend.SettingsURL,
		ScheduleURL: cfg.Backend.ScheduleURL,
	}
}

// Do performs the request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx responses come back as *APIError with the backend's
// "error" field as the message.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	endpoint := req.URL
	if len(req.Query) > 0 {
		parsed, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint url %q: %w", endpoint, err)
		}
		q := parsed.Query()
		for key, values := range req.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		parsed.RawQuery = q.Encode()
		endpoint = parsed.String()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Set(key, v)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// extractErrorMessage pulls the error string out of an upstream failure body.
// The backend is inconsistent: some handlers answer {"error": ...}, others
// {"success": false, "error": ...} or {"message": ...}.
func extractErrorMessage(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// AuthHeader is a convenience for the single-token headers used everywhere.
func AuthHeader(name, token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set(name, token)
	}
	return h
}
