package horizon

import "net/url"

// Assets requests the assets the network knows about, optionally filtered by
// code and issuer.
type Assets struct {
	code   string
	issuer string
	params listParams
}

// NewAssets builds a request for the network's asset directory.
func NewAssets() Assets {
	return Assets{}
}

// WithCode returns a copy of the request filtered to assets with the given
// code.
func (e Assets) WithCode(code string) Assets {
	e.code = code

	return e
}

// WithIssuer returns a copy of the request filtered to assets issued by the
// given account.
func (e Assets) WithIssuer(issuer string) Assets {
	e.issuer = issuer

	return e
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Assets) WithCursor(cursor string) Assets {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Assets) WithOrder(order Direction) Assets {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Assets) WithLimit(limit uint) Assets {
	e.params.limit = limit

	return e
}

func (e Assets) requestPath() string { return "/assets" }

func (e Assets) requestQuery() url.Values {
	query := e.params.query()
	setIfPresent(query, "asset_code", e.code)
	setIfPresent(query, "asset_issuer", e.issuer)

	return query
}

func (Assets) pageResponse() Asset { return Asset{} }
