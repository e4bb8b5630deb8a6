package horizon

import (
	"net/url"
	"strconv"
)

// OrderbookDetails requests the order book summary for an asset pair: the
// open bids and asks, aggregated by price level.
type OrderbookDetails struct {
	selling AssetID
	buying  AssetID
	limit   uint
}

// NewOrderbookDetails builds a request for the order book trading the selling
// asset against the buying asset.
func NewOrderbookDetails(selling, buying AssetID) OrderbookDetails {
	return OrderbookDetails{selling: selling, buying: buying}
}

// WithLimit returns a copy of the request capping the number of price levels
// returned on each side of the book.
func (e OrderbookDetails) WithLimit(limit uint) OrderbookDetails {
	e.limit = limit

	return e
}

func (e OrderbookDetails) requestPath() string { return "/order_book" }

func (e OrderbookDetails) requestQuery() url.Values {
	query := url.Values{}
	setAsset(query, "selling", e.selling)
	setAsset(query, "buying", e.buying)

	if e.limit > 0 {
		query.Set("limit", strconv.FormatUint(uint64(e.limit), 10))
	}

	return query
}

func (OrderbookDetails) singleResponse() Orderbook { return Orderbook{} }
func (OrderbookDetails) streamResponse() Orderbook { return Orderbook{} }
