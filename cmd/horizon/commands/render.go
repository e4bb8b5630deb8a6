package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// renderOutput routes a value to the renderer selected with --output. The
// table renderer is type-specific; json and yaml encode the value as is.
func renderOutput(value any, tableFn func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(value)
	case OutputFormatYAML:
		return renderYAML(value)
	case OutputFormatTable, "":
		return tableFn()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, viper.GetString("output"))
	}
}

func renderJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding as JSON: %w", err)
	}

	return nil
}

func renderYAML(value any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding as YAML: %w", err)
	}

	return nil
}

// assetLabel renders flattened asset fields the way AssetID.String does.
func assetLabel(assetType, code, issuer string) string {
	if assetType == "native" {
		return "native"
	}

	return code + ":" + issuer
}

func accountTable(account *horizon.Account) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append("Account", account.AccountID)
	_ = table.Append("Sequence", strconv.FormatInt(account.Sequence, 10))
	_ = table.Append("Subentries", strconv.FormatInt(account.SubentryCount, 10))
	_ = table.Append("Home Domain", account.HomeDomain)

	for _, balance := range account.Balances {
		_ = table.Append("Balance "+balance.String(), balance.Balance)
	}

	_ = table.Render()

	return nil
}

func datumTable(datum *horizon.Datum) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Value")
	_ = table.Append(datum.Value)
	_ = table.Render()

	return nil
}

func assetsTable(assets []horizon.Asset) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Asset", "Amount", "Accounts", "Auth Required", "Auth Revocable")

	for _, asset := range assets {
		_ = table.Append(
			asset.String(),
			asset.Amount,
			strconv.FormatInt(asset.NumAccounts, 10),
			strconv.FormatBool(asset.Flags.AuthRequired),
			strconv.FormatBool(asset.Flags.AuthRevocable),
		)
	}

	_ = table.Render()

	return nil
}

func ledgersTable(ledgers []horizon.Ledger) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Sequence", "Closed At", "Transactions", "Operations", "Hash")

	for _, ledger := range ledgers {
		_ = table.Append(
			strconv.FormatInt(int64(ledger.Sequence), 10),
			ledger.ClosedAt.Format(time.RFC3339),
			strconv.FormatInt(ledger.TransactionCount, 10),
			strconv.FormatInt(ledger.OperationCount, 10),
			ledger.Hash,
		)
	}

	_ = table.Render()

	return nil
}

func transactionsTable(transactions []horizon.Transaction) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Hash", "Ledger", "Created At", "Source", "Operations")

	for _, tx := range transactions {
		_ = table.Append(
			tx.Hash,
			strconv.FormatInt(int64(tx.Ledger), 10),
			tx.CreatedAt.Format(time.RFC3339),
			tx.SourceAccount,
			strconv.FormatInt(int64(tx.OperationCount), 10),
		)
	}

	_ = table.Render()

	return nil
}

func operationsTable(operations []horizon.Operation) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Created At", "Source", "Details")

	for _, op := range operations {
		_ = table.Append(
			strconv.FormatInt(op.ID, 10),
			op.Type,
			op.CreatedAt.Format(time.RFC3339),
			op.SourceAccount,
			operationSummary(op),
		)
	}

	_ = table.Render()

	return nil
}

// operationSummary condenses the per-type payload to one cell.
func operationSummary(op horizon.Operation) string {
	switch op.Type {
	case "create_account":
		return op.Account + " <- " + op.StartingBalance
	case "payment", "path_payment":
		return fmt.Sprintf("%s %s -> %s", op.Amount, assetLabel(op.AssetType, op.AssetCode, op.AssetIssuer), op.To)
	case "account_merge":
		return "into " + op.Into
	case "manage_data":
		return op.Name
	default:
		return ""
	}
}

func effectsTable(effects []horizon.Effect) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Account", "Amount")

	for _, effect := range effects {
		_ = table.Append(effect.ID, effect.Type, effect.Account, effect.Amount)
	}

	_ = table.Render()

	return nil
}

func offersTable(offers []horizon.Offer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Selling", "Buying", "Amount", "Price")

	for _, offer := range offers {
		_ = table.Append(
			strconv.FormatInt(offer.ID, 10),
			offer.Selling.String(),
			offer.Buying.String(),
			offer.Amount,
			offer.Price,
		)
	}

	_ = table.Render()

	return nil
}

func tradesTable(trades []horizon.Trade) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Time", "Base", "Base Amount", "Counter", "Counter Amount")

	for _, trade := range trades {
		_ = table.Append(
			trade.LedgerCloseTime.Format(time.RFC3339),
			assetLabel(trade.BaseAssetType, trade.BaseAssetCode, trade.BaseAssetIssuer),
			trade.BaseAmount,
			assetLabel(trade.CounterAssetType, trade.CounterAssetCode, trade.CounterAssetIssuer),
			trade.CounterAmount,
		)
	}

	_ = table.Render()

	return nil
}

func aggregationsTable(aggregations []horizon.TradeAggregation) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Segment Start", "Trades", "Base Volume", "Open", "High", "Low", "Close")

	for _, agg := range aggregations {
		_ = table.Append(
			agg.StartedAt().Format(time.RFC3339),
			strconv.FormatInt(agg.TradeCount, 10),
			agg.BaseVolume,
			agg.Open,
			agg.High,
			agg.Low,
			agg.Close,
		)
	}

	_ = table.Render()

	return nil
}

func orderbookTable(book *horizon.Orderbook) error {
	fmt.Fprintf(os.Stdout, "Base: %s  Counter: %s\n", book.Base.String(), book.Counter.String())

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Side", "Price", "Amount")

	for _, bid := range book.Bids {
		_ = table.Append("bid", bid.Price, bid.Amount)
	}

	for _, ask := range book.Asks {
		_ = table.Append("ask", ask.Price, ask.Amount)
	}

	_ = table.Render()

	return nil
}

func pathsTable(paths *horizon.PaymentPaths) error {
	if len(paths.Paths) == 0 {
		_, _ = os.Stdout.WriteString("No payment paths found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Source", "Source Amount", "Hops", "Destination", "Destination Amount")

	for _, path := range paths.Paths {
		_ = table.Append(
			assetLabel(path.SourceAssetType, path.SourceAssetCode, path.SourceAssetIssuer),
			path.SourceAmount,
			strconv.Itoa(len(path.Path)),
			assetLabel(path.DestAssetType, path.DestAssetCode, path.DestAssetIssuer),
			path.DestAmount,
		)
	}

	_ = table.Render()

	return nil
}
