package horizon_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

func receiveEvent[R any](t *testing.T, sub *horizon.Subscription[R]) (horizon.StreamEvent[R], bool) {
	t.Helper()

	select {
	case event, ok := <-sub.Events():
		return event, ok
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for stream event")

		return horizon.StreamEvent[R]{}, false
	}
}

func TestStream(t *testing.T) {
	t.Parallel()
	t.Run("delivers records in order with cursors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/transactions", request.URL.Path)
			assert.Equal(t, "now", request.URL.Query().Get("cursor"))
			assert.Equal(t, "text/event-stream", request.Header.Get("Accept"))

			writer.Header().Set("Content-Type", "text/event-stream")

			flusher, ok := writer.(http.Flusher)
			require.True(t, ok)

			// Horizon opens streams with a hello event before real records.
			fmt.Fprint(writer, "event: open\ndata: \"hello\"\n\n")
			flusher.Flush()

			fmt.Fprint(writer, "id: 1001\ndata: {\"hash\": \"t1\", \"paging_token\": \"1001\"}\n\n")
			flusher.Flush()

			fmt.Fprint(writer, "id: 1002\ndata: {\"hash\": \"t2\", \"paging_token\": \"1002\"}\n\n")
			flusher.Flush()

			<-request.Context().Done()
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "")
		require.NoError(t, err)

		defer sub.Close()

		first, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t1", first.Record.Hash)
		assert.Equal(t, "1001", first.Cursor)

		second, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t2", second.Record.Hash)
		assert.Equal(t, "1002", second.Cursor)

		assert.Equal(t, "1002", sub.LastCursor())
	})

	t.Run("cursor selects the resume position", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "1001", request.URL.Query().Get("cursor"))

			writer.Header().Set("Content-Type", "text/event-stream")

			flusher, ok := writer.(http.Flusher)
			require.True(t, ok)

			fmt.Fprint(writer, "id: 1002\ndata: {\"hash\": \"t2\", \"paging_token\": \"1002\"}\n\n")
			flusher.Flush()

			<-request.Context().Done()
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "1001")
		require.NoError(t, err)

		defer sub.Close()

		event, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t2", event.Record.Hash)
	})

	t.Run("cancellation closes the event channel", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/event-stream")

			flusher, ok := writer.(http.Flusher)
			require.True(t, ok)

			fmt.Fprint(writer, "id: 1\ndata: {\"hash\": \"t1\", \"paging_token\": \"1\"}\n\n")
			flusher.Flush()

			<-request.Context().Done()
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "")
		require.NoError(t, err)

		_, ok := receiveEvent(t, sub)
		require.True(t, ok)

		sub.Close()

		deadline := time.After(5 * time.Second)

		for {
			select {
			case _, open := <-sub.Events():
				if !open {
					assert.NoError(t, sub.Err())

					return
				}
			case <-deadline:
				t.Fatal("event channel did not close after cancellation")
			}
		}
	})

	t.Run("resumes after the server closes the stream cleanly", func(t *testing.T) {
		t.Parallel()

		var connects atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/event-stream")

			flusher, ok := writer.(http.Flusher)
			require.True(t, ok)

			switch connects.Add(1) {
			case 1:
				assert.Equal(t, "now", request.URL.Query().Get("cursor"))

				fmt.Fprint(writer, "id: 1001\ndata: {\"hash\": \"t1\", \"paging_token\": \"1001\"}\n\n")
				flusher.Flush()

				// Returning ends the stream cleanly, the way Horizon
				// expires idle connections.
			default:
				assert.Equal(t, "1001", request.URL.Query().Get("cursor"))

				fmt.Fprint(writer, "id: 1002\ndata: {\"hash\": \"t2\", \"paging_token\": \"1002\"}\n\n")
				flusher.Flush()

				<-request.Context().Done()
			}
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "")
		require.NoError(t, err)

		defer sub.Close()

		first, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t1", first.Record.Hash)

		select {
		case notice := <-sub.Notices():
			assert.ErrorIs(t, notice.Err, horizon.ErrStreamEnded)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for the disconnect notice")
		}

		second, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t2", second.Record.Hash)
		assert.Equal(t, "1002", sub.LastCursor())
	})

	t.Run("resumes after an abrupt connection drop", func(t *testing.T) {
		t.Parallel()

		var connects atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/event-stream")

			flusher, ok := writer.(http.Flusher)
			require.True(t, ok)

			switch connects.Add(1) {
			case 1:
				fmt.Fprint(writer, "id: 1001\ndata: {\"hash\": \"t1\", \"paging_token\": \"1001\"}\n\n")
				flusher.Flush()

				panic(http.ErrAbortHandler)
			default:
				// Mid-stream drops resume through the SSE protocol's
				// Last-Event-ID header rather than the cursor parameter.
				assert.Equal(t, "1001", request.Header.Get("Last-Event-ID"))

				fmt.Fprint(writer, "id: 1002\ndata: {\"hash\": \"t2\", \"paging_token\": \"1002\"}\n\n")
				flusher.Flush()

				<-request.Context().Done()
			}
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "")
		require.NoError(t, err)

		defer sub.Close()

		first, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t1", first.Record.Hash)
		assert.Equal(t, "1001", first.Cursor)

		second, ok := receiveEvent(t, sub)
		require.True(t, ok)
		assert.Equal(t, "t2", second.Record.Hash)
		assert.Equal(t, "1002", sub.LastCursor())
	})

	t.Run("a rejected stream fails the subscription", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err := horizon.Stream(ctx, client, horizon.NewTransactions(), "")
		require.Error(t, err)
	})
}
