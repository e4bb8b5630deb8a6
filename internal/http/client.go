// Package http provides the HTTP transport used by the Horizon client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/lumenwire-io/horizon/internal/constants"
)

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a transport-agnostic request descriptor. Horizon is a read-only
// API from the client's perspective, so requests carry no body.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
}

// Response carries the raw result of a request. Interpretation of the status
// and body happens in pkg/horizon, not here.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client wraps a retrying HTTP client bound to a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     Logger
	debug      bool
	timeout    time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the transport logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig enables transparent retries for transient failures.
// Requests are GET-only and therefore idempotent.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		c.httpClient = retryClient.StandardClient()
	}
}

// NewClient creates a new transport client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "horizon-go",
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.Timeout = client.timeout

	return client
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL resolves a path and query against the base URL. Query parameters are
// encoded in sorted key order so equal requests serialize identically.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	return u
}

// Do executes a request and returns the raw response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.URL(req.Path, req.Query)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("http response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
			"bytes":  len(body),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get issues a GET request for the given path and query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}
