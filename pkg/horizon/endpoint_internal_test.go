package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_Query(t *testing.T) {
	t.Parallel()
	t.Run("unset parameters are omitted", func(t *testing.T) {
		t.Parallel()

		query := listParams{}.query()
		assert.Empty(t, query)
	})

	t.Run("set parameters are encoded", func(t *testing.T) {
		t.Parallel()

		query := listParams{cursor: "12345", order: OrderDesc, limit: 50}.query()
		assert.Equal(t, "cursor=12345&limit=50&order=desc", query.Encode())
	})
}

func TestEndpointPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint Endpoint
		path     string
	}{
		{"account details", NewAccountDetails("GA6HC"), "/accounts/GA6HC"},
		{"account data", NewAccountData("GA6HC", "welcome"), "/accounts/GA6HC/data/welcome"},
		{"account transactions", NewAccountTransactions("GA6HC"), "/accounts/GA6HC/transactions"},
		{"account offers", NewAccountOffers("GA6HC"), "/accounts/GA6HC/offers"},
		{"assets", NewAssets(), "/assets"},
		{"effects", NewEffects(), "/effects"},
		{"ledgers", NewLedgers(), "/ledgers"},
		{"ledger details", NewLedgerDetails(12345), "/ledgers/12345"},
		{"ledger payments", NewLedgerPayments(12345), "/ledgers/12345/payments"},
		{"operations", NewOperations(), "/operations"},
		{"operation details", NewOperationDetails(77309415424), "/operations/77309415424"},
		{"operation effects", NewOperationEffects(77309415424), "/operations/77309415424/effects"},
		{"payments", NewPayments(), "/payments"},
		{"path finding", NewFindPaths("GAAA", "GBBB", NativeAsset(), "10.0"), "/paths"},
		{"order book", NewOrderbookDetails(NativeAsset(), NativeAsset()), "/order_book"},
		{"trades", NewTrades(), "/trades"},
		{"trade aggregations", NewTradeAggregations(NativeAsset(), NativeAsset(), Resolution1h), "/trade_aggregations"},
		{"transactions", NewTransactions(), "/transactions"},
		{"transaction details", NewTransactionDetails("deadbeef"), "/transactions/deadbeef"},
		{"transaction effects", NewTransactionEffects("deadbeef"), "/transactions/deadbeef/effects"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.path, test.endpoint.requestPath())
		})
	}
}

func TestEndpointQueries(t *testing.T) {
	t.Parallel()
	t.Run("assets filters", func(t *testing.T) {
		t.Parallel()

		endpoint := NewAssets().WithCode("USD").WithIssuer("GA6HC").WithLimit(20)
		assert.Equal(t, "asset_code=USD&asset_issuer=GA6HC&limit=20", endpoint.requestQuery().Encode())
	})

	t.Run("path finding flattens the destination asset", func(t *testing.T) {
		t.Parallel()

		endpoint := NewFindPaths("GAAA", "GBBB", CreditAsset("MOBI", "GA6HC"), "10.0")
		query := endpoint.requestQuery()
		assert.Equal(t, "GAAA", query.Get("source_account"))
		assert.Equal(t, "GBBB", query.Get("destination_account"))
		assert.Equal(t, "10.0", query.Get("destination_amount"))
		assert.Equal(t, "credit_alphanum4", query.Get("destination_asset_type"))
		assert.Equal(t, "MOBI", query.Get("destination_asset_code"))
		assert.Equal(t, "GA6HC", query.Get("destination_asset_issuer"))
	})

	t.Run("native assets carry no code or issuer", func(t *testing.T) {
		t.Parallel()

		query := NewOrderbookDetails(NativeAsset(), CreditAsset("MOBI", "GA6HC")).requestQuery()
		assert.Equal(t, "native", query.Get("selling_asset_type"))
		assert.Empty(t, query.Get("selling_asset_code"))
		assert.Equal(t, "credit_alphanum4", query.Get("buying_asset_type"))
		assert.Equal(t, "MOBI", query.Get("buying_asset_code"))
	})

	t.Run("trade aggregations carry segment bounds", func(t *testing.T) {
		t.Parallel()

		endpoint := NewTradeAggregations(NativeAsset(), CreditAsset("MOBI", "GA6HC"), Resolution5m).
			WithStartTime(0).
			WithEndTime(1_500_000_000_000)
		query := endpoint.requestQuery()
		assert.Equal(t, "300000", query.Get("resolution"))
		assert.Equal(t, "0", query.Get("start_time"))
		assert.Equal(t, "1500000000000", query.Get("end_time"))
	})

	t.Run("trades offer filter", func(t *testing.T) {
		t.Parallel()

		query := NewTrades().WithOfferID(123).requestQuery()
		assert.Equal(t, "123", query.Get("offer_id"))
	})
}

func TestEndpointBuildersCopy(t *testing.T) {
	t.Parallel()

	base := NewTransactions()
	modified := base.WithCursor("12345").WithOrder(OrderAsc).WithLimit(200)

	assert.Empty(t, base.requestQuery())
	assert.Equal(t, "cursor=12345&limit=200&order=asc", modified.requestQuery().Encode())
}

func TestCreditAsset(t *testing.T) {
	t.Parallel()

	short := CreditAsset("MOBI", "GA6HC")
	require.Equal(t, "credit_alphanum4", short.Type)

	long := CreditAsset("LONGCODE", "GA6HC")
	require.Equal(t, "credit_alphanum12", long.Type)

	assert.Equal(t, "MOBI:GA6HC", short.String())
	assert.Equal(t, "native", NativeAsset().String())
}
