package horizon

import "net/url"

// Payments requests all payment operations across the ledger history.
type Payments struct {
	params listParams
}

// NewPayments builds a request for the global payment list.
func NewPayments() Payments {
	return Payments{}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Payments) WithCursor(cursor string) Payments {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Payments) WithOrder(order Direction) Payments {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Payments) WithLimit(limit uint) Payments {
	e.params.limit = limit

	return e
}

func (e Payments) requestPath() string      { return "/payments" }
func (e Payments) requestQuery() url.Values { return e.params.query() }

func (Payments) pageResponse() Operation   { return Operation{} }
func (Payments) streamResponse() Operation { return Operation{} }

// FindPaths requests the payment paths from a source account's assets to a
// desired amount of a destination asset. The response is a flat record
// collection without navigation links.
type FindPaths struct {
	sourceAccount      string
	destinationAccount string
	destinationAsset   AssetID
	destinationAmount  string
}

// NewFindPaths builds a path-finding request. The amount is the quantity of
// the destination asset the destination account should receive, in the
// decimal string form amounts appear in records.
func NewFindPaths(sourceAccount, destinationAccount string, destinationAsset AssetID, destinationAmount string) FindPaths {
	return FindPaths{
		sourceAccount:      sourceAccount,
		destinationAccount: destinationAccount,
		destinationAsset:   destinationAsset,
		destinationAmount:  destinationAmount,
	}
}

func (e FindPaths) requestPath() string { return "/paths" }

func (e FindPaths) requestQuery() url.Values {
	query := url.Values{}
	query.Set("source_account", e.sourceAccount)
	query.Set("destination_account", e.destinationAccount)
	query.Set("destination_amount", e.destinationAmount)
	setAsset(query, "destination", e.destinationAsset)

	return query
}

func (FindPaths) singleResponse() PaymentPaths { return PaymentPaths{} }
