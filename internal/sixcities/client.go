package sixcities

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
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the token attached to each request.
type TokenSource interface {
	Token() string
}

// Requester is the set of HTTP primitives operations rely on. *Client
// implements it; tests may substitute their own.
type Requester interface {
	Get(ctx context.Context, path string, dest any, expect ...int) (int, error)
	Post(ctx context.Context, path string, body, dest any, expect ...int) (int, error)
	Delete(ctx context.Context, path string, expect ...int) (int, error)
}

// Ensure Client implements Requester at compile time.
var _ Requester = (*Client)(nil)

// Header names understood by the API.
const (
	HeaderToken   = "X-Token"
	HeaderTraceID = "X-Trace-ID"
)

const (
	DefaultBaseURL   = "https://15.design.htmlacademy.pro/six-cities"
	DefaultTimeout   = 5 * time.Second
	defaultUserAgent = "sixcities/0.1"
)

// StatusError reports a response status the caller did not expect.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// IsStatus reports whether err is a StatusError carrying code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Client talks to the six-cities REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tokens    TokenSource
	logger    *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-request debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its Timeout wins over
// the timeout passed to NewClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client rooted at baseURL. A zero timeout uses
// DefaultTimeout; tokens may be nil when requests never need auth.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		tokens:    tokens,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get fetches path and decodes a 2xx JSON body into dest.
func (c *Client) Get(ctx context.Context, path string, dest any, expect ...int) (int, error) {
	return c.do(ctx, http.MethodGet, path, nil, dest, expect)
}

// Post sends body as JSON (nil sends no body) and decodes a 2xx response
// into dest.
func (c *Client) Post(ctx context.Context, path string, body, dest any, expect ...int) (int, error) {
	return c.do(ctx, http.MethodPost, path, body, dest, expect)
}

// Delete issues a DELETE for path.
func (c *Client) Delete(ctx context.Context, path string, expect ...int) (int, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, expect)
}

// do performs one request. Statuses listed in expect come back with a nil
// error and an undecoded body; other non-2xx statuses become *StatusError.
func (c *Client) do(ctx context.Context, method, path string, body, dest any, expect []int) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	traceID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderTraceID, traceID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(HeaderToken, token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "trace_id", traceID, "method", method, "path", path, "error", err)
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"trace_id", traceID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if slices.Contains(expect, resp.StatusCode) {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if dest == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
