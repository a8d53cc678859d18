// Package backend is the console's single HTTP entry point to the bakery
// platform API. Every request carries the session's bearer credential, and
// a 401 on a credentialed request logs the session out.
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
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
)

var _ ports.Backend = (*Client)(nil)

// DefaultTimeout bounds a single backend round trip when none is configured.
const DefaultTimeout = 30 * time.Second

// Credentials supplies the bearer token and is told when the backend
// rejects it. *service.SessionState satisfies it.
type Credentials interface {
	Token() string
	Invalidate(ctx context.Context, token string)
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
	// Details holds the backend's field-level validation messages, if any.
	Details []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return e.Message
}

// StatusCode returns the HTTP status of err if it is an *APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the bakery backend.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout of the underlying transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the transport, e.g. with an httptest client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for baseURL. creds may be nil for
// unauthenticated use.
func NewClient(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request describes one call. token overrides the session credential when
// set; anonymous suppresses the Authorization header entirely.
type request struct {
	op        string
	method    string
	path      string
	query     url.Values
	body      any
	token     string
	anonymous bool
}

// do performs r and decodes a JSON response into out (which may be nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: marshal body: %w", r.op, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := r.token
	if token == "" && !r.anonymous && c.creds != nil {
		token = c.creds.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(r.op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(r.op, "transport_error").Inc()
		return fmt.Errorf("%s: %w", r.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(r.op, "transport_error").Inc()
		return fmt.Errorf("%s: read response: %w", r.op, err)
	}

	if resp.StatusCode >= 300 {
		metrics.BackendRequestsTotal.WithLabelValues(r.op, outcome(resp.StatusCode)).Inc()
		apiErr := decodeAPIError(resp.StatusCode, data)
		c.log.Debug().
			Str("operation", r.op).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("backend error")
		if resp.StatusCode == http.StatusUnauthorized && token != "" && c.creds != nil {
			c.creds.Invalidate(ctx, token)
		}
		return apiErr
	}
	metrics.BackendRequestsTotal.WithLabelValues(r.op, "ok").Inc()

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.op, err)
	}
	return nil
}

func outcome(status int) string {
	if status >= 500 {
		return "server_error"
	}
	return "client_error"
}

// errorBody is the backend's error envelope. message is either a string or
// a list of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func decodeAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	var single string
	var list []string
	switch {
	case json.Unmarshal(body.Message, &single) == nil && single != "":
		apiErr.Message = single
	case json.Unmarshal(body.Message, &list) == nil && len(list) > 0:
		apiErr.Message = strings.Join(list, "; ")
		apiErr.Details = list
	case body.Error != "":
		apiErr.Message = body.Error
	default:
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
