package horizon

import "net/url"

// AccountDetails requests a single account by address.
type AccountDetails struct {
	accountID string
}

// NewAccountDetails builds a request for the account with the given address.
func NewAccountDetails(accountID string) AccountDetails {
	return AccountDetails{accountID: accountID}
}

func (e AccountDetails) requestPath() string      { return "/accounts/" + e.accountID }
func (e AccountDetails) requestQuery() url.Values { return url.Values{} }

func (AccountDetails) singleResponse() Account { return Account{} }

// AccountData requests a single key/value entry from an account's data
// attachments.
type AccountData struct {
	accountID string
	key       string
}

// NewAccountData builds a request for one named data entry on an account.
func NewAccountData(accountID, key string) AccountData {
	return AccountData{accountID: accountID, key: key}
}

func (e AccountData) requestPath() string      { return "/accounts/" + e.accountID + "/data/" + e.key }
func (e AccountData) requestQuery() url.Values { return url.Values{} }

func (AccountData) singleResponse() Datum { return Datum{} }

// AccountTransactions requests the transactions an account was part of.
type AccountTransactions struct {
	accountID string
	params    listParams
}

// NewAccountTransactions builds a request for an account's transactions.
func NewAccountTransactions(accountID string) AccountTransactions {
	return AccountTransactions{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountTransactions) WithCursor(cursor string) AccountTransactions {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountTransactions) WithOrder(order Direction) AccountTransactions {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountTransactions) WithLimit(limit uint) AccountTransactions {
	e.params.limit = limit

	return e
}

func (e AccountTransactions) requestPath() string {
	return "/accounts/" + e.accountID + "/transactions"
}

func (e AccountTransactions) requestQuery() url.Values { return e.params.query() }

func (AccountTransactions) pageResponse() Transaction   { return Transaction{} }
func (AccountTransactions) streamResponse() Transaction { return Transaction{} }

// AccountOperations requests the operations that touched an account.
type AccountOperations struct {
	accountID string
	params    listParams
}

// NewAccountOperations builds a request for an account's operations.
func NewAccountOperations(accountID string) AccountOperations {
	return AccountOperations{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountOperations) WithCursor(cursor string) AccountOperations {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountOperations) WithOrder(order Direction) AccountOperations {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountOperations) WithLimit(limit uint) AccountOperations {
	e.params.limit = limit

	return e
}

func (e AccountOperations) requestPath() string {
	return "/accounts/" + e.accountID + "/operations"
}

func (e AccountOperations) requestQuery() url.Values { return e.params.query() }

func (AccountOperations) pageResponse() Operation   { return Operation{} }
func (AccountOperations) streamResponse() Operation { return Operation{} }

// AccountPayments requests the payment operations that touched an account.
type AccountPayments struct {
	accountID string
	params    listParams
}

// NewAccountPayments builds a request for an account's payments.
func NewAccountPayments(accountID string) AccountPayments {
	return AccountPayments{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountPayments) WithCursor(cursor string) AccountPayments {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountPayments) WithOrder(order Direction) AccountPayments {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountPayments) WithLimit(limit uint) AccountPayments {
	e.params.limit = limit

	return e
}

func (e AccountPayments) requestPath() string {
	return "/accounts/" + e.accountID + "/payments"
}

func (e AccountPayments) requestQuery() url.Values { return e.params.query() }

func (AccountPayments) pageResponse() Operation   { return Operation{} }
func (AccountPayments) streamResponse() Operation { return Operation{} }

// AccountEffects requests the effects produced by operations on an account.
type AccountEffects struct {
	accountID string
	params    listParams
}

// NewAccountEffects builds a request for an account's effects.
func NewAccountEffects(accountID string) AccountEffects {
	return AccountEffects{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountEffects) WithCursor(cursor string) AccountEffects {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountEffects) WithOrder(order Direction) AccountEffects {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountEffects) WithLimit(limit uint) AccountEffects {
	e.params.limit = limit

	return e
}

func (e AccountEffects) requestPath() string {
	return "/accounts/" + e.accountID + "/effects"
}

func (e AccountEffects) requestQuery() url.Values { return e.params.query() }

func (AccountEffects) pageResponse() Effect   { return Effect{} }
func (AccountEffects) streamResponse() Effect { return Effect{} }

// AccountOffers requests the open offers an account has on the distributed
// exchange.
type AccountOffers struct {
	accountID string
	params    listParams
}

// NewAccountOffers builds a request for an account's open offers.
func NewAccountOffers(accountID string) AccountOffers {
	return AccountOffers{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountOffers) WithCursor(cursor string) AccountOffers {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountOffers) WithOrder(order Direction) AccountOffers {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountOffers) WithLimit(limit uint) AccountOffers {
	e.params.limit = limit

	return e
}

func (e AccountOffers) requestPath() string      { return "/accounts/" + e.accountID + "/offers" }
func (e AccountOffers) requestQuery() url.Values { return e.params.query() }

func (AccountOffers) pageResponse() Offer { return Offer{} }

// AccountTrades requests the trades an account has taken part in.
type AccountTrades struct {
	accountID string
	params    listParams
}

// NewAccountTrades builds a request for an account's trades.
func NewAccountTrades(accountID string) AccountTrades {
	return AccountTrades{accountID: accountID}
}

// WithCursor returns a copy of the request resuming after the given cursor.
func (e AccountTrades) WithCursor(cursor string) AccountTrades {
	e.params.cursor = cursor

	return e
}

// WithOrder returns a copy of the request with the given result order.
func (e AccountTrades) WithOrder(order Direction) AccountTrades {
	e.params.order = order

	return e
}

// WithLimit returns a copy of the request with the given page size.
func (e AccountTrades) WithLimit(limit uint) AccountTrades {
	e.params.limit = limit

	return e
}

func (e AccountTrades) requestPath() string      { return "/accounts/" + e.accountID + "/trades" }
func (e AccountTrades) requestQuery() url.Values { return e.params.query() }

func (AccountTrades) pageResponse() Trade { return Trade{} }
