package horizon

import (
	"encoding/json"
	"time"
)

// Kind tags a record with its resource kind. The set of kinds is fixed by the
// Horizon API's documented schema.
type Kind string

// Record kinds.
const (
	KindAccount          Kind = "account"
	KindDatum            Kind = "datum"
	KindAsset            Kind = "asset"
	KindEffect           Kind = "effect"
	KindLedger           Kind = "ledger"
	KindOffer            Kind = "offer"
	KindOperation        Kind = "operation"
	KindOrderbook        Kind = "orderbook"
	KindPaymentPaths     Kind = "payment_paths"
	KindTrade            Kind = "trade"
	KindTradeAggregation Kind = "trade_aggregation"
	KindTransaction      Kind = "transaction"
)

// Record is one decoded resource instance. The union over kinds is closed:
// only types in this package implement it.
type Record interface {
	Kind() Kind

	record()
}

// DecodeRecord decodes a single JSON object into the record type named by
// kind. The core never inspects individual fields beyond this dispatch.
func DecodeRecord(kind Kind, data []byte) (Record, error) {
	var record Record

	switch kind {
	case KindAccount:
		record = &Account{}
	case KindDatum:
		record = &Datum{}
	case KindAsset:
		record = &Asset{}
	case KindEffect:
		record = &Effect{}
	case KindLedger:
		record = &Ledger{}
	case KindOffer:
		record = &Offer{}
	case KindOperation:
		record = &Operation{}
	case KindOrderbook:
		record = &Orderbook{}
	case KindPaymentPaths:
		record = &PaymentPaths{}
	case KindTrade:
		record = &Trade{}
	case KindTradeAggregation:
		record = &TradeAggregation{}
	case KindTransaction:
		record = &Transaction{}
	default:
		return nil, ErrUnknownKind
	}

	err := json.Unmarshal(data, record)
	if err != nil {
		return nil, &DecodeError{Kind: kind, Err: err}
	}

	return record, nil
}

// Link represents a single HAL link.
type Link struct {
	Href string `json:"href" yaml:"href"`
}

// AssetID identifies an asset by type, code and issuer. The native asset has
// type "native" and no code or issuer.
type AssetID struct {
	Type   string `json:"asset_type"             yaml:"asset_type"`
	Code   string `json:"asset_code,omitempty"   yaml:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty" yaml:"asset_issuer,omitempty"`
}

// IsNative reports whether the asset is the network's native asset.
func (a AssetID) IsNative() bool {
	return a.Type == "native"
}

// String renders the asset in code:issuer form, or "native".
func (a AssetID) String() string {
	if a.IsNative() {
		return "native"
	}

	return a.Code + ":" + a.Issuer
}

// PriceRatio is the exact fractional representation of a price.
type PriceRatio struct {
	N int64 `json:"n" yaml:"n"`
	D int64 `json:"d" yaml:"d"`
}

// Balance is one of an account's asset holdings.
type Balance struct {
	AssetID `yaml:",inline"`

	Balance string `json:"balance"         yaml:"balance"`
	Limit   string `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// AccountFlags are the authorization flags set on an account.
type AccountFlags struct {
	AuthRequired  bool `json:"auth_required"  yaml:"auth_required"`
	AuthRevocable bool `json:"auth_revocable" yaml:"auth_revocable"`
}

// AccountThresholds are the signing thresholds set on an account.
type AccountThresholds struct {
	LowThreshold  int `json:"low_threshold"  yaml:"low_threshold"`
	MedThreshold  int `json:"med_threshold"  yaml:"med_threshold"`
	HighThreshold int `json:"high_threshold" yaml:"high_threshold"`
}

// Signer is one of the signers attached to an account.
type Signer struct {
	Key    string `json:"key"    yaml:"key"`
	Weight int    `json:"weight" yaml:"weight"`
	Type   string `json:"type"   yaml:"type"`
}

// Account represents a single account on the ledger.
type Account struct {
	ID            string             `json:"id"              yaml:"id"`
	AccountID     string             `json:"account_id"      yaml:"account_id"`
	PagingToken   string             `json:"paging_token"   yaml:"paging_token"`
	Sequence      int64              `json:"sequence,string" yaml:"sequence"`
	SubentryCount int64              `json:"subentry_count"  yaml:"subentry_count"`
	HomeDomain    string             `json:"home_domain,omitempty" yaml:"home_domain,omitempty"`
	Balances      []Balance          `json:"balances"        yaml:"balances"`
	Flags         AccountFlags       `json:"flags"           yaml:"flags"`
	Thresholds    AccountThresholds  `json:"thresholds"      yaml:"thresholds"`
	Signers       []Signer           `json:"signers"         yaml:"signers"`
	Data          map[string]string  `json:"data"            yaml:"data"`
}

// Datum is one key's value from an account's data attachments. The value is
// base64-encoded by the server.
type Datum struct {
	Value string `json:"value" yaml:"value"`
}

// Asset represents an asset in circulation, with issuance statistics.
type Asset struct {
	AssetID `yaml:",inline"`

	PagingToken string       `json:"paging_token" yaml:"paging_token"`
	Amount      string       `json:"amount"       yaml:"amount"`
	NumAccounts int64        `json:"num_accounts" yaml:"num_accounts"`
	Flags       AccountFlags `json:"flags"        yaml:"flags"`
}

// Effect represents one ledger change yielded by an operation. The type tag
// selects which of the optional fields are populated.
type Effect struct {
	ID          string `json:"id"           yaml:"id"`
	PagingToken string `json:"paging_token" yaml:"paging_token"`
	Account     string `json:"account"      yaml:"account"`
	Type        string `json:"type"         yaml:"type"`
	TypeI       int32  `json:"type_i"       yaml:"type_i"`

	// account_created
	StartingBalance string `json:"starting_balance,omitempty" yaml:"starting_balance,omitempty"`
	// account_credited / account_debited / trustline changes
	Amount      string `json:"amount,omitempty"       yaml:"amount,omitempty"`
	AssetType   string `json:"asset_type,omitempty"   yaml:"asset_type,omitempty"`
	AssetCode   string `json:"asset_code,omitempty"   yaml:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty" yaml:"asset_issuer,omitempty"`
	Limit       string `json:"limit,omitempty"        yaml:"limit,omitempty"`
	// signer effects
	PublicKey string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	Weight    int    `json:"weight,omitempty"     yaml:"weight,omitempty"`
	// trade effects
	Seller       string `json:"seller,omitempty"        yaml:"seller,omitempty"`
	OfferID      int64  `json:"offer_id,omitempty"      yaml:"offer_id,omitempty"`
	SoldAmount   string `json:"sold_amount,omitempty"   yaml:"sold_amount,omitempty"`
	SoldAssetType string `json:"sold_asset_type,omitempty" yaml:"sold_asset_type,omitempty"`
	BoughtAmount string `json:"bought_amount,omitempty" yaml:"bought_amount,omitempty"`
}

// Ledger represents a single closed ledger.
type Ledger struct {
	ID                   string    `json:"id"                      yaml:"id"`
	PagingToken          string    `json:"paging_token"            yaml:"paging_token"`
	Hash                 string    `json:"hash"                    yaml:"hash"`
	PrevHash             string    `json:"prev_hash,omitempty"     yaml:"prev_hash,omitempty"`
	Sequence             int32     `json:"sequence"                yaml:"sequence"`
	TransactionCount     int64     `json:"transaction_count"       yaml:"transaction_count"`
	OperationCount       int64     `json:"operation_count"         yaml:"operation_count"`
	ClosedAt             time.Time `json:"closed_at"               yaml:"closed_at"`
	TotalCoins           string    `json:"total_coins"             yaml:"total_coins"`
	FeePool              string    `json:"fee_pool"                yaml:"fee_pool"`
	BaseFeeInStroops     int64     `json:"base_fee_in_stroops"     yaml:"base_fee_in_stroops"`
	BaseReserveInStroops int64     `json:"base_reserve_in_stroops" yaml:"base_reserve_in_stroops"`
	MaxTxSetSize         int32     `json:"max_tx_set_size"         yaml:"max_tx_set_size"`
	ProtocolVersion      int32     `json:"protocol_version"        yaml:"protocol_version"`
}

// Offer represents an open offer to exchange one asset for another.
type Offer struct {
	ID          int64      `json:"id"           yaml:"id"`
	PagingToken string     `json:"paging_token" yaml:"paging_token"`
	Seller      string     `json:"seller"       yaml:"seller"`
	Selling     AssetID    `json:"selling"      yaml:"selling"`
	Buying      AssetID    `json:"buying"       yaml:"buying"`
	Amount      string     `json:"amount"       yaml:"amount"`
	PriceRatio  PriceRatio `json:"price_r"      yaml:"price_r"`
	Price       string     `json:"price"        yaml:"price"`
}

// Operation represents a single operation applied within a transaction. The
// type tag selects which of the optional fields are populated.
type Operation struct {
	ID              int64     `json:"id,string"        yaml:"id"`
	PagingToken     string    `json:"paging_token"     yaml:"paging_token"`
	TransactionHash string    `json:"transaction_hash" yaml:"transaction_hash"`
	SourceAccount   string    `json:"source_account"   yaml:"source_account"`
	Type            string    `json:"type"             yaml:"type"`
	TypeI           int32     `json:"type_i"           yaml:"type_i"`
	CreatedAt       time.Time `json:"created_at"       yaml:"created_at"`

	// create_account
	Account         string `json:"account,omitempty"          yaml:"account,omitempty"`
	Funder          string `json:"funder,omitempty"           yaml:"funder,omitempty"`
	StartingBalance string `json:"starting_balance,omitempty" yaml:"starting_balance,omitempty"`
	// payment / path_payment
	From        string `json:"from,omitempty"         yaml:"from,omitempty"`
	To          string `json:"to,omitempty"           yaml:"to,omitempty"`
	Amount      string `json:"amount,omitempty"       yaml:"amount,omitempty"`
	AssetType   string `json:"asset_type,omitempty"   yaml:"asset_type,omitempty"`
	AssetCode   string `json:"asset_code,omitempty"   yaml:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty" yaml:"asset_issuer,omitempty"`
	SourceMax   string `json:"source_max,omitempty"   yaml:"source_max,omitempty"`
	// manage_offer / create_passive_offer
	OfferID int64  `json:"offer_id,omitempty" yaml:"offer_id,omitempty"`
	Price   string `json:"price,omitempty"    yaml:"price,omitempty"`
	// set_options
	HomeDomain    string `json:"home_domain,omitempty"    yaml:"home_domain,omitempty"`
	InflationDest string `json:"inflation_dest,omitempty" yaml:"inflation_dest,omitempty"`
	// change_trust / allow_trust
	Trustee   string `json:"trustee,omitempty"   yaml:"trustee,omitempty"`
	Trustor   string `json:"trustor,omitempty"   yaml:"trustor,omitempty"`
	Limit     string `json:"limit,omitempty"     yaml:"limit,omitempty"`
	Authorize bool   `json:"authorize,omitempty" yaml:"authorize,omitempty"`
	// account_merge
	Into string `json:"into,omitempty" yaml:"into,omitempty"`
	// manage_data
	Name  string `json:"name,omitempty"  yaml:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// OfferSummary is one price level of an order book.
type OfferSummary struct {
	Amount     string     `json:"amount"  yaml:"amount"`
	PriceRatio PriceRatio `json:"price_r" yaml:"price_r"`
	Price      string     `json:"price"   yaml:"price"`
}

// Orderbook is a snapshot of the open bids and asks for an asset pair.
type Orderbook struct {
	Bids    []OfferSummary `json:"bids"    yaml:"bids"`
	Asks    []OfferSummary `json:"asks"    yaml:"asks"`
	Base    AssetID        `json:"base"    yaml:"base"`
	Counter AssetID        `json:"counter" yaml:"counter"`
}

// PaymentPath is one viable chain of offers from a source asset to a
// destination asset.
type PaymentPath struct {
	Path              []AssetID `json:"path"                     yaml:"path"`
	SourceAmount      string    `json:"source_amount"            yaml:"source_amount"`
	SourceAssetType   string    `json:"source_asset_type"        yaml:"source_asset_type"`
	SourceAssetCode   string    `json:"source_asset_code,omitempty"   yaml:"source_asset_code,omitempty"`
	SourceAssetIssuer string    `json:"source_asset_issuer,omitempty" yaml:"source_asset_issuer,omitempty"`
	DestAmount        string    `json:"destination_amount"       yaml:"destination_amount"`
	DestAssetType     string    `json:"destination_asset_type"   yaml:"destination_asset_type"`
	DestAssetCode     string    `json:"destination_asset_code,omitempty"   yaml:"destination_asset_code,omitempty"`
	DestAssetIssuer   string    `json:"destination_asset_issuer,omitempty" yaml:"destination_asset_issuer,omitempty"`
}

// PaymentPaths is the path-finding result set. The server returns the paths
// in an embedded-records envelope without navigation links.
type PaymentPaths struct {
	Paths []PaymentPath `yaml:"paths"`
}

// UnmarshalJSON decodes the flat embedded-records envelope.
func (p *PaymentPaths) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Embedded struct {
			Records []PaymentPath `json:"records"`
		} `json:"_embedded"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return err
	}

	p.Paths = envelope.Embedded.Records

	return nil
}

// Trade represents one executed exchange of assets.
type Trade struct {
	ID              string     `json:"id"                yaml:"id"`
	PagingToken     string     `json:"paging_token"      yaml:"paging_token"`
	OfferID         string     `json:"offer_id"          yaml:"offer_id"`
	LedgerCloseTime time.Time  `json:"ledger_close_time" yaml:"ledger_close_time"`
	BaseAccount     string     `json:"base_account"      yaml:"base_account"`
	BaseAmount      string     `json:"base_amount"       yaml:"base_amount"`
	BaseAssetType   string     `json:"base_asset_type"   yaml:"base_asset_type"`
	BaseAssetCode   string     `json:"base_asset_code,omitempty"   yaml:"base_asset_code,omitempty"`
	BaseAssetIssuer string     `json:"base_asset_issuer,omitempty" yaml:"base_asset_issuer,omitempty"`
	CounterAccount  string     `json:"counter_account"   yaml:"counter_account"`
	CounterAmount   string     `json:"counter_amount"    yaml:"counter_amount"`
	CounterAssetType   string  `json:"counter_asset_type"   yaml:"counter_asset_type"`
	CounterAssetCode   string  `json:"counter_asset_code,omitempty"   yaml:"counter_asset_code,omitempty"`
	CounterAssetIssuer string  `json:"counter_asset_issuer,omitempty" yaml:"counter_asset_issuer,omitempty"`
	Price           PriceRatio `json:"price"             yaml:"price"`
	BaseIsSeller    bool       `json:"base_is_seller"    yaml:"base_is_seller"`
}

// TradeAggregation summarizes trading activity for an asset pair over one
// time segment.
type TradeAggregation struct {
	Timestamp     int64  `json:"timestamp"      yaml:"timestamp"`
	TradeCount    int64  `json:"trade_count"    yaml:"trade_count"`
	BaseVolume    string `json:"base_volume"    yaml:"base_volume"`
	CounterVolume string `json:"counter_volume" yaml:"counter_volume"`
	Avg           string `json:"avg"            yaml:"avg"`
	High          string `json:"high"           yaml:"high"`
	Low           string `json:"low"            yaml:"low"`
	Open          string `json:"open"           yaml:"open"`
	Close         string `json:"close"          yaml:"close"`
}

// StartedAt converts the segment's millisecond timestamp to a time value.
func (a *TradeAggregation) StartedAt() time.Time {
	return time.UnixMilli(a.Timestamp).UTC()
}

// Transaction represents a single committed transaction.
type Transaction struct {
	ID            string    `json:"id"                      yaml:"id"`
	PagingToken   string    `json:"paging_token"            yaml:"paging_token"`
	Hash          string    `json:"hash"                    yaml:"hash"`
	Ledger        int32     `json:"ledger"                  yaml:"ledger"`
	CreatedAt     time.Time `json:"created_at"              yaml:"created_at"`
	SourceAccount string    `json:"source_account"          yaml:"source_account"`
	SourceSeq     int64     `json:"source_account_sequence,string" yaml:"source_account_sequence"`
	FeePaid       int64     `json:"fee_paid"                yaml:"fee_paid"`
	OperationCount int32    `json:"operation_count"         yaml:"operation_count"`
	MemoType      string    `json:"memo_type"               yaml:"memo_type"`
	Memo          string    `json:"memo,omitempty"          yaml:"memo,omitempty"`
	EnvelopeXDR   string    `json:"envelope_xdr"            yaml:"envelope_xdr"`
	ResultXDR     string    `json:"result_xdr"              yaml:"result_xdr"`
	ResultMetaXDR string    `json:"result_meta_xdr"         yaml:"result_meta_xdr"`
	FeeMetaXDR    string    `json:"fee_meta_xdr"            yaml:"fee_meta_xdr"`
}

// Kind implementations. One clause per resource keeps the union closed and
// greppable.

func (*Account) Kind() Kind          { return KindAccount }
func (*Datum) Kind() Kind            { return KindDatum }
func (*Asset) Kind() Kind            { return KindAsset }
func (*Effect) Kind() Kind           { return KindEffect }
func (*Ledger) Kind() Kind           { return KindLedger }
func (*Offer) Kind() Kind            { return KindOffer }
func (*Operation) Kind() Kind        { return KindOperation }
func (*Orderbook) Kind() Kind        { return KindOrderbook }
func (*PaymentPaths) Kind() Kind     { return KindPaymentPaths }
func (*Trade) Kind() Kind            { return KindTrade }
func (*TradeAggregation) Kind() Kind { return KindTradeAggregation }
func (*Transaction) Kind() Kind      { return KindTransaction }

func (*Account) record()          {}
func (*Datum) record()            {}
func (*Asset) record()            {}
func (*Effect) record()           {}
func (*Ledger) record()           {}
func (*Offer) record()            {}
func (*Operation) record()        {}
func (*Orderbook) record()        {}
func (*PaymentPaths) record()     {}
func (*Trade) record()            {}
func (*TradeAggregation) record() {}
func (*Transaction) record()      {}
