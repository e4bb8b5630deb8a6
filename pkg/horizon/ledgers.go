package horizon

import (
	"net/url"
	"strconv"
)

// Ledgers requests the chain of closed ledgers.
type Ledgers struct {
	params listParams
}

// NewLedgers builds a request for the ledger list.
func NewLedgers() Ledgers {
	return Ledgers{}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e Ledgers) WithCursor(cursor string) Ledgers {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e Ledgers) WithOrder(order Direction) Ledgers {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e Ledgers) WithLimit(limit uint) Ledgers {
	e.params.limit = limit

	return e
}

func (e Ledgers) requestPath() string      { return "/ledgers" }
func (e Ledgers) requestQuery() url.Values { return e.params.query() }

func (Ledgers) pageResponse() Ledger   { return Ledger{} }
func (Ledgers) streamResponse() Ledger { return Ledger{} }

func ledgerPath(sequence uint32) string {
	return "/ledgers/" + strconv.FormatUint(uint64(sequence), 10)
}

// LedgerDetails requests a single ledger by sequence number.
type LedgerDetails struct {
	sequence uint32
}

// NewLedgerDetails builds a request for the ledger with the given sequence.
func NewLedgerDetails(sequence uint32) LedgerDetails {
	return LedgerDetails{sequence: sequence}
}

func (e LedgerDetails) requestPath() string      { return ledgerPath(e.sequence) }
func (e LedgerDetails) requestQuery() url.Values { return url.Values{} }

func (LedgerDetails) singleResponse() Ledger { return Ledger{} }

// LedgerTransactions requests the transactions applied in one ledger.
type LedgerTransactions struct {
	sequence uint32
	params   listParams
}

// NewLedgerTransactions builds a request for a ledger's transactions.
func NewLedgerTransactions(sequence uint32) LedgerTransactions {
	return LedgerTransactions{sequence: sequence}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e LedgerTransactions) WithCursor(cursor string) LedgerTransactions {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e LedgerTransactions) WithOrder(order Direction) LedgerTransactions {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e LedgerTransactions) WithLimit(limit uint) LedgerTransactions {
	e.params.limit = limit

	return e
}

func (e LedgerTransactions) requestPath() string      { return ledgerPath(e.sequence) + "/transactions" }
func (e LedgerTransactions) requestQuery() url.Values { return e.params.query() }

func (LedgerTransactions) pageResponse() Transaction { return Transaction{} }

// LedgerOperations requests the operations applied in one ledger.
type LedgerOperations struct {
	sequence uint32
	params   listParams
}

// NewLedgerOperations builds a request for a ledger's operations.
func NewLedgerOperations(sequence uint32) LedgerOperations {
	return LedgerOperations{sequence: sequence}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e LedgerOperations) WithCursor(cursor string) LedgerOperations {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e LedgerOperations) WithOrder(order Direction) LedgerOperations {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e LedgerOperations) WithLimit(limit uint) LedgerOperations {
	e.params.limit = limit

	return e
}

func (e LedgerOperations) requestPath() string      { return ledgerPath(e.sequence) + "/operations" }
func (e LedgerOperations) requestQuery() url.Values { return e.params.query() }

func (LedgerOperations) pageResponse() Operation { return Operation{} }

// LedgerPayments requests the payment operations applied in one ledger.
type LedgerPayments struct {
	sequence uint32
	params   listParams
}

// NewLedgerPayments builds a request for a ledger's payments.
func NewLedgerPayments(sequence uint32) LedgerPayments {
	return LedgerPayments{sequence: sequence}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e LedgerPayments) WithCursor(cursor string) LedgerPayments {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e LedgerPayments) WithOrder(order Direction) LedgerPayments {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e LedgerPayments) WithLimit(limit uint) LedgerPayments {
	e.params.limit = limit

	return e
}

func (e LedgerPayments) requestPath() string      { return ledgerPath(e.sequence) + "/payments" }
func (e LedgerPayments) requestQuery() url.Values { return e.params.query() }

func (LedgerPayments) pageResponse() Operation { return Operation{} }

// LedgerEffects requests the effects produced in one ledger.
type LedgerEffects struct {
	sequence uint32
	params   listParams
}

// NewLedgerEffects builds a request for a ledger's effects.
func NewLedgerEffects(sequence uint32) LedgerEffects {
	return LedgerEffects{sequence: sequence}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e LedgerEffects) WithCursor(cursor string) LedgerEffects {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e LedgerEffects) WithOrder(order Direction) LedgerEffects {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e LedgerEffects) WithLimit(limit uint) LedgerEffects {
	e.params.limit = limit

	return e
}

func (e LedgerEffects) requestPath() string      { return ledgerPath(e.sequence) + "/effects" }
func (e LedgerEffects) requestQuery() url.Values { return e.params.query() }

func (LedgerEffects) pageResponse() Effect { return Effect{} }
