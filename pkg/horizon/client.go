package horizon

import (
	"net/url"
	"strings"
	"time"

	"github.com/lumenwire-io/horizon/internal/constants"
	internalhttp "github.com/lumenwire-io/horizon/internal/http"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client executes endpoints against one Horizon server. It is immutable after
// construction and safe for concurrent use: the base URL, timeout, and
// transport are read-only, and every execution owns its own request state.
type Client struct {
	transport *internalhttp.Client
	serverURL string
	timeout   time.Duration
	logger    Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	timeout      time.Duration
	logger       Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// WithTimeout sets the per-request timeout. The timeout applies to each
// request individually, not to a whole pagination or stream session.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger sets the structured logger used by the transport.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithRetries enables transparent transport-level retries for transient
// failures. All requests are idempotent GETs, so opting in is always safe.
func WithRetries(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(o *options) {
		o.retryMax = retryMax
		o.retryWaitMin = waitMin
		o.retryWaitMax = waitMax
	}
}

// New creates a client for the given server URL. A malformed URL is a
// construction-time error; it is never surfaced per request.
func New(serverURL string, opts ...Option) (*Client, error) {
	if serverURL == "" {
		return nil, ErrServerURLRequired
	}

	parsed, err := url.Parse(serverURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrBadServerURL
	}

	o := &options{
		timeout: constants.DefaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	httpOpts := []internalhttp.Option{
		internalhttp.WithTimeout(o.timeout),
	}

	if o.logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: o.logger}))
	}

	if o.debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if o.userAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(o.userAgent))
	}

	if o.retryMax > 0 {
		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(o.retryMax, o.retryWaitMin, o.retryWaitMax))
	}

	return &Client{
		transport: internalhttp.NewClient(serverURL, httpOpts...),
		serverURL: strings.TrimRight(parsed.String(), "/"),
		timeout:   o.timeout,
		logger:    o.logger,
	}, nil
}

// ServerURL returns the server the client was constructed against.
func (c *Client) ServerURL() string {
	return c.serverURL
}

// EndpointURL resolves an endpoint to the absolute URL the client would
// request. Two endpoints with equal path and parameters resolve identically.
func (c *Client) EndpointURL(ep Endpoint) string {
	return c.transport.URL(ep.requestPath(), ep.requestQuery())
}

// loggerAdapter adapts horizon.Logger to the transport's logger.
type loggerAdapter struct {
	logger Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
