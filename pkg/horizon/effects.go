package horizon

import "net/url"

// Effects requests all effects across the ledger history.
type Effects struct {
	params listParams
}

// NewEffects builds a request for the global effect list.
func NewEffects() Effects {
	return Effects{}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Effects) WithCursor(cursor string) Effects {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Effects) WithOrder(order Direction) Effects {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Effects) WithLimit(limit uint) Effects {
	e.params.limit = limit

	return e
}

func (e Effects) requestPath() string      { return "/effects" }
func (e Effects) requestQuery() url.Values { return e.params.query() }

func (Effects) pageResponse() Effect   { return Effect{} }
func (Effects) streamResponse() Effect { return Effect{} }
