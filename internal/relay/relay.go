// Package relay republishes stream events onto a NATS subject so other
// processes can consume a watched feed without holding their own Horizon
// connection.
package relay

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lumenwire-io/horizon/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrURLRequired     = errors.New("NATS URL required")
	ErrSubjectRequired = errors.New("subject required")
)

// Publisher sends encoded stream events to interested consumers. The
// streaming loop only depends on this interface.
type Publisher interface {
	Publish(subject string, data []byte) error
	Close() error
}

// Config configures a NATS relay connection.
type Config struct {
	// URL is the NATS server address, e.g. nats://localhost:4222.
	URL string

	// Name identifies the connection to the server. Optional.
	Name string

	// SubjectPrefix is prepended to every published subject. Optional.
	SubjectPrefix string
}

// NATSRelay publishes stream events to a NATS server.
type NATSRelay struct {
	conn   *nats.Conn
	prefix string
}

// Connect establishes the relay's NATS connection. The connection reconnects
// on its own after transient failures; events produced while disconnected are
// buffered by the NATS client up to its internal limit.
func Connect(config Config) (*NATSRelay, error) {
	if config.URL == "" {
		return nil, ErrURLRequired
	}

	name := config.Name
	if name == "" {
		name = "horizon-relay"
	}

	conn, err := nats.Connect(config.URL,
		nats.Name(name),
		nats.Timeout(constants.ShortHTTPTimeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", config.URL, err)
	}

	return &NATSRelay{conn: conn, prefix: config.SubjectPrefix}, nil
}

// Publish sends one encoded event to the given subject.
func (r *NATSRelay) Publish(subject string, data []byte) error {
	if subject == "" {
		return ErrSubjectRequired
	}

	if r.prefix != "" {
		subject = r.prefix + "." + subject
	}

	err := r.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Close flushes buffered events and closes the connection.
func (r *NATSRelay) Close() error {
	err := r.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}
