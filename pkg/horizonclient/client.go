// Package horizonclient is the entry point for creating Horizon API clients.
package horizonclient

import (
	"strings"
	"time"

	"github.com/lumenwire-io/horizon/internal/constants"
	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// Config collects the settings a client is built from. The zero value of
// every field except ServerURL is usable.
type Config struct {
	// ServerURL is the base address of the Horizon deployment to talk to.
	ServerURL string

	// UserAgent overrides the User-Agent header sent with every request.
	UserAgent string

	// Timeout bounds each request. Zero means the default timeout.
	Timeout time.Duration

	// RetryMax is the number of times a failed request is retried. Zero
	// disables retries.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	// Zero values fall back to the defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives client diagnostics. Nil disables logging.
	Logger horizon.Logger

	// Debug enables request/response logging through Logger.
	Debug bool
}

// New creates a Horizon client from a config. The server address is
// normalized: a trailing slash is dropped and a missing scheme defaults to
// https.
func New(config *Config) (*horizon.Client, error) {
	if config == nil {
		return nil, horizon.ErrConfigRequired
	}

	serverURL := strings.TrimSuffix(config.ServerURL, "/")
	if serverURL != "" && !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}

	opts := []horizon.Option{}

	if config.UserAgent != "" {
		opts = append(opts, horizon.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, horizon.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, horizon.WithRetries(config.RetryMax, waitMin, waitMax))
	}

	if config.Logger != nil {
		opts = append(opts, horizon.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, horizon.WithDebug(true))
	}

	return horizon.New(serverURL, opts...)
}

// NewWithServer creates a client for the given Horizon address with default
// settings.
func NewWithServer(serverURL string) (*horizon.Client, error) {
	return New(&Config{ServerURL: serverURL})
}

// NewPubnet creates a client for the public network's Horizon deployment.
func NewPubnet() (*horizon.Client, error) {
	return NewWithServer(constants.PubnetURL)
}

// NewTestnet creates a client for the test network's Horizon deployment.
func NewTestnet() (*horizon.Client, error) {
	return NewWithServer(constants.TestnetURL)
}
