package horizon

import (
	"net/url"
	"strconv"
)

// Endpoint describes one remote read operation: a relative path plus query
// parameters. Endpoint values are immutable; the With* modifiers on concrete
// endpoints return copies. Building an endpoint never performs I/O and never
// fails.
type Endpoint interface {
	requestPath() string
	requestQuery() url.Values
}

// SingleEndpoint is an endpoint whose response is one record of type R.
type SingleEndpoint[R any] interface {
	Endpoint

	singleResponse() R
}

// PageEndpoint is an endpoint whose response is a page of records of type R.
type PageEndpoint[R any] interface {
	Endpoint

	pageResponse() R
}

// StreamEndpoint is an endpoint that also supports a live feed of records of
// type R over a long-lived connection.
type StreamEndpoint[R any] interface {
	Endpoint

	streamResponse() R
}

// Pageable is a page endpoint that can be re-issued from a cursor and with a
// given order, which is what the iterator needs to follow navigation links.
type Pageable[R any, E any] interface {
	PageEndpoint[R]

	WithCursor(cursor string) E
	WithOrder(order Direction) E
}

// Direction is the order in which collection results are returned.
type Direction string

// Collection orderings.
const (
	OrderAsc  Direction = "asc"
	OrderDesc Direction = "desc"
)

// Resolution is a trade-aggregation time segment duration in milliseconds.
// Horizon only accepts the documented set of values.
type Resolution int64

// Supported trade-aggregation resolutions.
const (
	Resolution1m  Resolution = 60_000
	Resolution5m  Resolution = 300_000
	Resolution15m Resolution = 900_000
	Resolution1h  Resolution = 3_600_000
	Resolution1d  Resolution = 86_400_000
	Resolution1w  Resolution = 604_800_000
)

// listParams carries the parameters common to every collection endpoint.
// Unset parameters are omitted from the query entirely; some endpoints reject
// empty-valued parameters.
type listParams struct {
	cursor string
	order  Direction
	limit  uint
}

func (p listParams) query() url.Values {
	query := url.Values{}
	if p.cursor != "" {
		query.Set("cursor", p.cursor)
	}

	if p.order != "" {
		query.Set("order", string(p.order))
	}

	if p.limit > 0 {
		query.Set("limit", strconv.FormatUint(uint64(p.limit), 10))
	}

	return query
}

// setIfPresent adds a parameter only when a value has been set.
func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

// setAsset adds an asset's type/code/issuer parameters under the given
// prefix, in the shape the path-finding, trades, and order book endpoints
// expect.
func setAsset(query url.Values, prefix string, asset AssetID) {
	query.Set(prefix+"_asset_type", asset.Type)

	if !asset.IsNative() {
		query.Set(prefix+"_asset_code", asset.Code)
		query.Set(prefix+"_asset_issuer", asset.Issuer)
	}
}

// NativeAsset returns the identifier of the network's native asset.
func NativeAsset() AssetID {
	return AssetID{Type: "native"}
}

// CreditAsset returns the identifier of an issued asset. The type is derived
// from the code length the way Horizon expects.
func CreditAsset(code, issuer string) AssetID {
	assetType := "credit_alphanum4"
	if len(code) > 4 {
		assetType = "credit_alphanum12"
	}

	return AssetID{Type: assetType, Code: code, Issuer: issuer}
}
