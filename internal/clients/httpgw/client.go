// Package httpgw provides typed clients for the gateway's JSON REST API.
//
// Every endpoint has two methods: XxxAPI sends the request and returns the raw
// *http.Response, and Xxx parses and validates the body into its schema type.
// Transport errors are returned unchanged; non-2xx responses become *StatusError.
package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gatewayperf/gatewayperf/internal/config"
	"github.com/gatewayperf/gatewayperf/internal/fakers"
	"github.com/gatewayperf/gatewayperf/internal/metrics"
	"github.com/gatewayperf/gatewayperf/internal/schema"
)

// Extensions carries per-request metadata.
type Extensions struct {
	// Route is the templated path used to group requests in load statistics,
	// e.g. /api/v1/users/{user_id}.
	Route string
}

// Client sends JSON requests to the gateway base URL.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	logger   *slog.Logger
	fake     *fakers.Fake
	recorder metrics.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default tuned http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithFaker sets the generator used by request builders.
func WithFaker(fake *fakers.Fake) Option {
	return func(c *Client) { c.fake = fake }
}

// WithRecorder reports every request to rec. This is the load-test client.
func WithRecorder(rec metrics.Recorder) Option {
	return func(c *Client) { c.recorder = rec }
}

// New builds a Client for cfg.
func New(cfg config.HTTPClientConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.ClientURL())
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}

	c := &Client{
		baseURL: base,
		logger:  slog.Default(),
		fake:    fakers.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = NewHTTPClient(cfg.Timeout)
	}
	c.logger = c.logger.With("component", "httpgw")

	if c.recorder != nil {
		next := c.http.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		wrapped := *c.http
		wrapped.Transport = &recordingTransport{next: next, recorder: c.recorder, now: time.Now}
		c.http = &wrapped
	}

	return c, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, ext Extensions) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, ext)
}

// Post sends a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any, ext Extensions) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, ext)
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, ext Extensions) (*http.Response, error) {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	if ext.Route == "" {
		ext.Route = path
	}
	req, err := http.NewRequestWithContext(withExtensions(ctx, ext), method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("gateway response", "method", method, "route", ext.Route, "status", resp.StatusCode)
	return resp, nil
}

// decode reads resp into a T, rejecting non-2xx statuses and contract violations.
func decode[T any](resp *http.Response, method, route string) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s body: %w", method, route, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Route:      route,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrDecodeResponse, method, route, err)
	}
	if err := schema.Validate(out); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, route, err)
	}
	return out, nil
}

// call chains an XxxAPI method with decode.
func call[T any](method, route string) func(*http.Response, error) (*T, error) {
	return func(resp *http.Response, err error) (*T, error) {
		if err != nil {
			return nil, err
		}
		return decode[T](resp, method, route)
	}
}
