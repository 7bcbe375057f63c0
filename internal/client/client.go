// Package client is a typed HTTP client for the contest resource API.
// Every call is a single attempt; failures are returned to the caller
// without retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/artcontest/pkg/api"
)

const requestIDHeader = "X-Request-Id"

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []api.FieldError
	RequestID  string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api: status %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request " + e.RequestID + ")"
	}
	return msg
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsConflict reports whether the server rejected the request as a duplicate.
func IsConflict(err error) bool { return IsStatus(err, http.StatusConflict) }

// IsNotFound reports whether the server answered 404.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// Client talks to the resource API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("adapter", "api_client")
	return c
}

// SetToken replaces the bearer token, e.g. after Login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Contests returns the contest resource.
func (c *Client) Contests() *Contests { return &Contests{c: c} }

// Applications returns the application resource.
func (c *Client) Applications() *Applications { return &Applications{c: c} }

// Results returns the result resource.
func (c *Client) Results() *Results { return &Results{c: c} }

// Reviews returns the review resource.
func (c *Client) Reviews() *Reviews { return &Reviews{c: c} }

// Login exchanges admin credentials for an access token and keeps it for
// subsequent requests.
func (c *Client) Login(ctx context.Context, login, password string) (*api.LoginResponse, error) {
	var out api.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, api.LoginRequest{Login: login, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Upload stores a base64-encoded file and returns its public URL.
func (c *Client) Upload(ctx context.Context, req api.UploadRequest) (*api.UploadResponse, error) {
	var out api.UploadResponse
	if err := c.do(ctx, http.MethodPost, "/upload-file", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePayment opens a payment session for an application.
func (c *Client) CreatePayment(ctx context.Context, req api.PaymentRequest) (*api.PaymentResponse, error) {
	var out api.PaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payment", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError builds an APIError from a non-2xx response. The request id
// comes from the body, or from the response header when the body has none.
func decodeError(resp *http.Response, raw []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body api.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
		apiErr.RequestID = body.RequestID
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.RequestID == "" && apiErr.StatusCode >= http.StatusInternalServerError {
		apiErr.RequestID = resp.Header.Get(requestIDHeader)
	}
	return apiErr
}
