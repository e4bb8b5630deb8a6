package constants

import "time"

// Well-known Horizon servers.
const (
	// PubnetURL is the public network Horizon server.
	PubnetURL = "https://horizon.stellar.org"

	// TestnetURL is the test network Horizon server.
	TestnetURL = "https://horizon-testnet.stellar.org"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits for the transport layer. Retries are disabled unless the
// caller opts in; one-shot requests surface transport errors directly.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Streaming reconnect behavior.
const (
	// StreamBackoffInitial is the first reconnect delay after a disconnect.
	StreamBackoffInitial = 500 * time.Millisecond

	// StreamBackoffMax caps the reconnect delay.
	StreamBackoffMax = 30 * time.Second

	// StreamEventBuffer is the buffer size of the subscription event channel.
	StreamEventBuffer = 100

	// StreamNoticeBuffer is the buffer size of the disconnect notice channel.
	StreamNoticeBuffer = 10
)

// Pagination defaults.
const (
	// DefaultPageSize is the page size requested when none is specified.
	DefaultPageSize = 10

	// MaxPageSize is the largest page size Horizon will serve.
	MaxPageSize = 200
)
