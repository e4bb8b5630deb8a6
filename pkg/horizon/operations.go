package horizon

import (
	"net/url"
	"strconv"
)

// Operations requests all operations across the ledger history.
type Operations struct {
	params listParams
}

// NewOperations builds a request for the global operation list.
func NewOperations() Operations {
	return Operations{}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Operations) WithCursor(cursor string) Operations {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Operations) WithOrder(order Direction) Operations {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Operations) WithLimit(limit uint) Operations {
	e.params.limit = limit

	return e
}

func (e Operations) requestPath() string      { return "/operations" }
func (e Operations) requestQuery() url.Values { return e.params.query() }

func (Operations) pageResponse() Operation   { return Operation{} }
func (Operations) streamResponse() Operation { return Operation{} }

func operationPath(id int64) string {
	return "/operations/" + strconv.FormatInt(id, 10)
}

// OperationDetails requests a single operation by identifier.
type OperationDetails struct {
	id int64
}

// NewOperationDetails builds a request for the operation with the given
// identifier.
func NewOperationDetails(id int64) OperationDetails {
	return OperationDetails{id: id}
}

func (e OperationDetails) requestPath() string      { return operationPath(e.id) }
func (e OperationDetails) requestQuery() url.Values { return url.Values{} }

func (OperationDetails) singleResponse() Operation { return Operation{} }

// OperationEffects requests the effects produced by one operation.
type OperationEffects struct {
	id     int64
	params listParams
}

// NewOperationEffects builds a request for an operation's effects.
func NewOperationEffects(id int64) OperationEffects {
	return OperationEffects{id: id}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e OperationEffects) WithCursor(cursor string) OperationEffects {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e OperationEffects) WithOrder(order Direction) OperationEffects {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e OperationEffects) WithLimit(limit uint) OperationEffects {
	e.params.limit = limit

	return e
}

func (e OperationEffects) requestPath() string      { return operationPath(e.id) + "/effects" }
func (e OperationEffects) requestQuery() url.Values { return e.params.query() }

func (OperationEffects) pageResponse() Effect { return Effect{} }
