package horizon

import (
	"net/url"
	"strconv"
)

// Trades requests fulfilled trades, optionally filtered to one asset pair or
// to the trades that filled a particular offer.
type Trades struct {
	base     *AssetID
	counter  *AssetID
	offerID  int64
	hasOffer bool
	params   listParams
}

// NewTrades builds a request for the global trade list.
func NewTrades() Trades {
	return Trades{}
}

// WithAssetPair returns a copy of the request filtered to trades between the
// base and counter assets.
func (e Trades) WithAssetPair(base, counter AssetID) Trades {
	e.base = &base
	e.counter = &counter

	return e
}

// WithOfferID returns a copy of the request filtered to trades that filled
// the given offer.
func (e Trades) WithOfferID(offerID int64) Trades {
	e.offerID = offerID
	e.hasOffer = true

	return e
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Trades) WithCursor(cursor string) Trades {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Trades) WithOrder(order Direction) Trades {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Trades) WithLimit(limit uint) Trades {
	e.params.limit = limit

	return e
}

func (e Trades) requestPath() string { return "/trades" }

func (e Trades) requestQuery() url.Values {
	query := e.params.query()

	if e.base != nil {
		setAsset(query, "base", *e.base)
	}

	if e.counter != nil {
		setAsset(query, "counter", *e.counter)
	}

	if e.hasOffer {
		query.Set("offer_id", strconv.FormatInt(e.offerID, 10))
	}

	return query
}

func (Trades) pageResponse() Trade   { return Trade{} }
func (Trades) streamResponse() Trade { return Trade{} }

// TradeAggregations requests trade history for an asset pair bucketed into
// fixed time segments. Segment boundaries are aligned to the resolution, so
// the start and end bounds should be multiples of it.
type TradeAggregations struct {
	base       AssetID
	counter    AssetID
	resolution Resolution
	startTime  int64
	endTime    int64
	params     listParams
}

// NewTradeAggregations builds an aggregation request for the given asset pair
// at the given segment resolution.
func NewTradeAggregations(base, counter AssetID, resolution Resolution) TradeAggregations {
	return TradeAggregations{base: base, counter: counter, resolution: resolution}
}

// WithStartTime returns a copy of the request with the lower time bound, in
// milliseconds since the Unix epoch.
func (e TradeAggregations) WithStartTime(startTime int64) TradeAggregations {
	e.startTime = startTime

	return e
}

// WithEndTime returns a copy of the request with the upper time bound, in
// milliseconds since the Unix epoch.
func (e TradeAggregations) WithEndTime(endTime int64) TradeAggregations {
	e.endTime = endTime

	return e
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e TradeAggregations) WithCursor(cursor string) TradeAggregations {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e TradeAggregations) WithOrder(order Direction) TradeAggregations {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e TradeAggregations) WithLimit(limit uint) TradeAggregations {
	e.params.limit = limit

	return e
}

func (e TradeAggregations) requestPath() string { return "/trade_aggregations" }

func (e TradeAggregations) requestQuery() url.Values {
	query := e.params.query()
	setAsset(query, "base", e.base)
	setAsset(query, "counter", e.counter)
	query.Set("resolution", strconv.FormatInt(int64(e.resolution), 10))
	query.Set("start_time", strconv.FormatInt(e.startTime, 10))
	query.Set("end_time", strconv.FormatInt(e.endTime, 10))

	return query
}

func (TradeAggregations) pageResponse() TradeAggregation { return TradeAggregation{} }
