package horizon

import "net/url"

// Transactions requests all transactions across the ledger history.
type Transactions struct {
	params listParams
}

// NewTransactions builds a request for the global transaction list.
func NewTransactions() Transactions {
	return Transactions{}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Transactions) WithCursor(cursor string) Transactions {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Transactions) WithOrder(order Direction) Transactions {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Transactions) WithLimit(limit uint) Transactions {
	e.params.limit = limit

	return e
}

func (e Transactions) requestPath() string      { return "/transactions" }
func (e Transactions) requestQuery() url.Values { return e.params.query() }

func (Transactions) pageResponse() Transaction   { return Transaction{} }
func (Transactions) streamResponse() Transaction { return Transaction{} }

func transactionPath(hash string) string {
	return "/transactions/" + hash
}

// TransactionDetails requests a single transaction by hash.
type TransactionDetails struct {
	hash string
}

// NewTransactionDetails builds a request for the transaction with the given
// hex-encoded hash.
func NewTransactionDetails(hash string) TransactionDetails {
	return TransactionDetails{hash: hash}
}

func (e TransactionDetails) requestPath() string      { return transactionPath(e.hash) }
func (e TransactionDetails) requestQuery() url.Values { return url.Values{} }

func (TransactionDetails) singleResponse() Transaction { return Transaction{} }

// TransactionOperations requests the operations in one transaction.
type TransactionOperations struct {
	hash   string
	params listParams
}

// NewTransactionOperations builds a request for a transaction's operations.
func NewTransactionOperations(hash string) TransactionOperations {
	return TransactionOperations{hash: hash}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e TransactionOperations) WithCursor(cursor string) TransactionOperations {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e TransactionOperations) WithOrder(order Direction) TransactionOperations {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e TransactionOperations) WithLimit(limit uint) TransactionOperations {
	e.params.limit = limit

	return e
}

func (e TransactionOperations) requestPath() string      { return transactionPath(e.hash) + "/operations" }
func (e TransactionOperations) requestQuery() url.Values { return e.params.query() }

func (TransactionOperations) pageResponse() Operation { return Operation{} }

// TransactionPayments requests the payment operations in one transaction.
type TransactionPayments struct {
	hash   string
	params listParams
}

// NewTransactionPayments builds a request for a transaction's payments.
func NewTransactionPayments(hash string) TransactionPayments {
	return TransactionPayments{hash: hash}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e TransactionPayments) WithCursor(cursor string) TransactionPayments {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e TransactionPayments) WithOrder(order Direction) TransactionPayments {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e TransactionPayments) WithLimit(limit uint) TransactionPayments {
	e.params.limit = limit

	return e
}

func (e TransactionPayments) requestPath() string      { return transactionPath(e.hash) + "/payments" }
func (e TransactionPayments) requestQuery() url.Values { return e.params.query() }

func (TransactionPayments) pageResponse() Operation { return Operation{} }

// TransactionEffects requests the effects produced by one transaction.
type TransactionEffects struct {
	hash   string
	params listParams
}

// NewTransactionEffects builds a request for a transaction's effects.
func NewTransactionEffects(hash string) TransactionEffects {
	return TransactionEffects{hash: hash}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e TransactionEffects) WithCursor(cursor string) TransactionEffects {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e TransactionEffects) WithOrder(order Direction) TransactionEffects {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e TransactionEffects) WithLimit(limit uint) TransactionEffects {
	e.params.limit = limit

	return e
}

func (e TransactionEffects) requestPath() string      { return transactionPath(e.hash) + "/effects" }
func (e TransactionEffects) requestQuery() url.Values { return e.params.query() }

func (TransactionEffects) pageResponse() Effect { return Effect{} }
