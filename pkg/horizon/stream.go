package horizon

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/r3labs/sse/v2"
	"gopkg.in/cenkalti/backoff.v1"

	"github.com/lumenwire-io/horizon/internal/constants"
)

// CursorNow is the sentinel resume position meaning "only events produced
// after the subscription was established".
const CursorNow = "now"

// StreamEvent is one record delivered over a live feed, together with the
// cursor to resume from after it.
type StreamEvent[R any] struct {
	Record R
	Cursor string
}

// DisconnectNotice informs the caller of a transient connection loss. The
// subscription keeps reconnecting on its own; the notice is observational.
type DisconnectNotice struct {
	Err   error
	Delay time.Duration
}

// Subscription is a live feed of records from a streaming endpoint. Events
// arrive strictly in server-send order on Events; transient disconnects are
// reported on Notices without terminating the subscription. The subscription
// ends when the caller cancels its context or the server rejects the stream
// with a non-transient status; after that, Events is closed and Err reports
// the terminal failure, if any.
type Subscription[R any] struct {
	events  chan StreamEvent[R]
	notices chan DisconnectNotice
	cancel  context.CancelFunc

	mu         sync.Mutex
	lastCursor string
	terminal   error
}

// Events returns the channel on which stream events are delivered. It is
// closed when the subscription ends; no events are delivered after that.
func (s *Subscription[R]) Events() <-chan StreamEvent[R] {
	return s.events
}

// Notices returns the channel carrying transient disconnect notices.
// Deliveries are best-effort: if the caller is not listening, notices are
// dropped rather than stalling the stream.
func (s *Subscription[R]) Notices() <-chan DisconnectNotice {
	return s.notices
}

// LastCursor returns the cursor of the most recently delivered event, or the
// cursor the subscription started from. It is safe to persist as a resume
// position.
func (s *Subscription[R]) LastCursor() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastCursor
}

// Err returns the terminal error after Events has been closed. It is nil
// when the subscription ended by caller cancellation.
func (s *Subscription[R]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.terminal
}

// Close cancels the subscription. It returns once cancellation is underway;
// Events is closed promptly and no further events are delivered.
func (s *Subscription[R]) Close() {
	s.cancel()
}

func (s *Subscription[R]) setTerminal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminal == nil {
		s.terminal = err
	}
}

func (s *Subscription[R]) setCursor(cursor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCursor = cursor
}

func (s *Subscription[R]) notify(notice DisconnectNotice) {
	select {
	case s.notices <- notice:
	default:
	}
}

// Stream subscribes to a streaming endpoint's live feed. The cursor selects
// the resume position; pass CursorNow (or "") to receive only new events. The
// call returns once the subscription is established. The feed reconnects
// automatically with bounded exponential backoff after transient connection
// loss, and resumes from the last delivered event both after abrupt drops and
// after the server ends the stream cleanly.
func Stream[R any](ctx context.Context, client *Client, endpoint StreamEndpoint[R], cursor string) (*Subscription[R], error) {
	if cursor == "" {
		cursor = CursorNow
	}

	streamCtx, cancel := context.WithCancel(ctx)

	sub := &Subscription[R]{
		events:     make(chan StreamEvent[R], constants.StreamEventBuffer),
		notices:    make(chan DisconnectNotice, constants.StreamNoticeBuffer),
		cancel:     cancel,
		lastCursor: cursor,
	}

	established := make(chan error, 1)

	go sub.run(streamCtx, client, endpoint, established)

	err := <-established
	if err != nil {
		cancel()

		return nil, fmt.Errorf("subscribing to %s: %w", endpoint.requestPath(), err)
	}

	return sub, nil
}

// run owns the subscription: one consume call per server connection, resumed
// from the last delivered cursor until the context is cancelled or a terminal
// failure is recorded. Horizon ends idle streams cleanly to expire
// connections, so a clean end resumes too, after a notice to the caller.
func (s *Subscription[R]) run(ctx context.Context, client *Client, endpoint Endpoint, established chan<- error) {
	defer close(s.events)

	var once sync.Once

	settle := func(err error) {
		once.Do(func() { established <- err })
	}

	for {
		err := s.consume(ctx, client, endpoint, func() { settle(nil) })

		if terminal := s.Err(); terminal != nil {
			settle(terminal)

			return
		}

		if ctx.Err() != nil {
			settle(ctx.Err())

			return
		}

		if err != nil {
			// consume retries transient failures internally, so an error
			// with a live context and no recorded rejection is final.
			s.setTerminal(err)
			settle(err)

			return
		}

		s.notify(DisconnectNotice{Err: ErrStreamEnded, Delay: constants.StreamBackoffInitial})

		select {
		case <-ctx.Done():
			settle(ctx.Err())

			return
		case <-time.After(constants.StreamBackoffInitial):
		}
	}
}

// consume holds one server connection open and delivers its events, starting
// from the subscription's current cursor. Transient connect failures retry
// internally with backoff; the call returns nil when the server ends the
// stream cleanly. Within the connection the SSE client resumes abrupt drops
// itself via the Last-Event-ID header.
func (s *Subscription[R]) consume(ctx context.Context, client *Client, endpoint Endpoint, connected func()) error {
	query := endpoint.requestQuery()
	query.Set("cursor", s.LastCursor())

	sseClient := sse.NewClient(client.transport.URL(endpoint.requestPath(), query))
	sseClient.Headers = map[string]string{
		"Accept":        "text/event-stream",
		"Cache-Control": "no-cache",
		"Connection":    "keep-alive",
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = constants.StreamBackoffInitial
	expBackoff.MaxInterval = constants.StreamBackoffMax
	expBackoff.MaxElapsedTime = 0 // retry until the context is cancelled

	sseClient.ReconnectStrategy = backoff.WithContext(expBackoff, ctx)
	sseClient.ReconnectNotify = func(err error, delay time.Duration) {
		if isTerminalConnectError(err) {
			s.setTerminal(fmt.Errorf("stream rejected: %w", err))
			s.cancel()

			return
		}

		s.notify(DisconnectNotice{Err: err, Delay: delay})
	}
	sseClient.ResponseValidator = func(_ *sse.Client, resp *http.Response) error {
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()

			return fmt.Errorf("could not connect to stream: %s", http.StatusText(resp.StatusCode))
		}

		connected()

		return nil
	}

	return sseClient.SubscribeWithContext(ctx, "", func(event *sse.Event) {
		s.deliver(ctx, event)
	})
}

// deliver decodes one raw server-sent event into a record and hands it to the
// caller. Events are decoded one at a time, in arrival order.
func (s *Subscription[R]) deliver(ctx context.Context, event *sse.Event) {
	if !isRecordEvent(event) {
		return
	}

	record, err := decodeRecord[R](event.Data)
	if err != nil {
		// A malformed event is a schema mismatch; surface it and end the
		// subscription rather than skipping records.
		s.setTerminal(err)
		s.cancel()

		return
	}

	cursor := string(event.ID)
	if cursor != "" {
		s.setCursor(cursor)
	}

	select {
	case <-ctx.Done():
	case s.events <- StreamEvent[R]{Record: record, Cursor: cursor}:
	}
}

// isRecordEvent filters out the keep-alive chatter Horizon sends on a stream:
// an "open" event when the connection is established and "hello"/"byebye"
// payloads around the event window.
func isRecordEvent(event *sse.Event) bool {
	if string(event.Event) == "open" {
		return false
	}

	data := strings.TrimSpace(string(event.Data))
	if data == "" || data == `"hello"` || data == `"byebye"` {
		return false
	}

	return true
}

// isTerminalConnectError reports whether a connection failure is a
// non-retryable server rejection, such as streaming an endpoint that does
// not support it. The SSE library only exposes the status text.
func isTerminalConnectError(err error) bool {
	msg := err.Error()
	if !strings.Contains(msg, "could not connect to stream") {
		return false
	}

	for _, status := range []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusMethodNotAllowed,
		http.StatusNotAcceptable,
		http.StatusGone,
	} {
		if strings.Contains(msg, http.StatusText(status)) {
			return true
		}
	}

	return false
}
