package horizon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

func newTestClient(t *testing.T, serverURL string) *horizon.Client {
	t.Helper()

	client, err := horizon.New(serverURL)
	require.NoError(t, err)

	return client
}

func TestFetch(t *testing.T) {
	t.Parallel()
	t.Run("decodes a single record", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/accounts/GA6HC", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_, _ = writer.Write([]byte(`{
				"id": "GA6HC",
				"account_id": "GA6HC",
				"sequence": "88190107709773",
				"balances": [{"asset_type": "native", "balance": "100.0"}]
			}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		account, err := horizon.Fetch(context.Background(), client, horizon.NewAccountDetails("GA6HC"))
		require.NoError(t, err)
		assert.Equal(t, "GA6HC", account.AccountID)
		assert.Equal(t, int64(88190107709773), account.Sequence)
		require.Len(t, account.Balances, 1)
		assert.True(t, account.Balances[0].IsNative())
	})

	t.Run("not found surfaces the problem document", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{
				"type": "https://stellar.org/horizon-errors/not_found",
				"title": "Resource Missing",
				"status": 404
			}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := horizon.Fetch(context.Background(), client, horizon.NewAccountDetails("GMISSING"))
		require.Error(t, err)
		assert.True(t, horizon.IsNotFound(err))
	})

	t.Run("error status with garbage body still classifies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := horizon.Fetch(context.Background(), client, horizon.NewAccountDetails("GA6HC"))
		require.Error(t, err)

		problem := &horizon.Problem{}
		require.ErrorAs(t, err, &problem)
		assert.Equal(t, http.StatusBadGateway, problem.Status)
	})

	t.Run("success status with mismatched body is a decode error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`"not an object"`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := horizon.Fetch(context.Background(), client, horizon.NewAccountDetails("GA6HC"))
		require.Error(t, err)
		assert.True(t, horizon.IsDecodeError(err))
	})
}

func TestFetchPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ledgers", request.URL.Path)
		assert.Equal(t, "5", request.URL.Query().Get("limit"))

		_, _ = writer.Write([]byte(`{
			"_links": {
				"next": {"href": "/ledgers?cursor=8589934592&limit=5"}
			},
			"_embedded": {
				"records": [
					{"id": "aaa", "sequence": 1},
					{"id": "bbb", "sequence": 2}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	page, err := horizon.FetchPage(context.Background(), client, horizon.NewLedgers().WithLimit(5))
	require.NoError(t, err)
	require.Len(t, page.Records, 2)

	cursor, err := page.NextCursor()
	require.NoError(t, err)
	assert.Equal(t, "8589934592", cursor)
}

func TestFetchAsync(t *testing.T) {
	t.Parallel()
	t.Run("resolves to the same result as the blocking call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"id": "aaa", "sequence": 7}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		future := horizon.FetchAsync(context.Background(), client, horizon.NewLedgerDetails(7))

		ledger, err := future.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(7), ledger.Sequence)

		// A second wait returns the same outcome.
		again, err := future.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ledger, again)
	})

	t.Run("abandoning the wait does not lose the result", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			<-release
			_, _ = writer.Write([]byte(`{"id": "aaa", "sequence": 7}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		future := horizon.FetchAsync(context.Background(), client, horizon.NewLedgerDetails(7))

		waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := future.Wait(waitCtx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)

		ledger, err := future.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(7), ledger.Sequence)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := horizon.New("")
	require.ErrorIs(t, err, horizon.ErrServerURLRequired)

	_, err = horizon.New("://bad")
	require.ErrorIs(t, err, horizon.ErrBadServerURL)

	client, err := horizon.New("https://horizon.example.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.example.org", client.ServerURL())
}

func TestEndpointURL(t *testing.T) {
	t.Parallel()

	client, err := horizon.New("https://horizon.example.org")
	require.NoError(t, err)

	// Equal endpoints built independently resolve to the same URL, so it is
	// usable as a cache or dedup key.
	first := horizon.NewTrades().WithLimit(50).WithOrder(horizon.OrderDesc)
	second := horizon.NewTrades().WithLimit(50).WithOrder(horizon.OrderDesc)

	assert.Equal(t, client.EndpointURL(first), client.EndpointURL(second))
	assert.Equal(t,
		"https://horizon.example.org/trades?limit=50&order=desc",
		client.EndpointURL(first))

	other := horizon.NewTrades().WithLimit(50).WithOrder(horizon.OrderAsc)
	assert.NotEqual(t, client.EndpointURL(first), client.EndpointURL(other))
}
