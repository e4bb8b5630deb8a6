package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewLedgersCommand creates the ledgers command group.
func NewLedgersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledgers",
		Aliases: []string{"ledger"},
		Short:   "Browse closed ledgers",
	}

	cmd.AddCommand(listCommand("list", "List ledgers",
		func(opts pagerOptions) horizon.Ledgers {
			return horizon.NewLedgers().WithLimit(opts.pageBy)
		}, ledgersTable))
	cmd.AddCommand(newLedgerGetCommand())
	cmd.AddCommand(ledgerScopedListCommand("transactions", "List a ledger's transactions",
		func(sequence uint32, opts pagerOptions) horizon.LedgerTransactions {
			return horizon.NewLedgerTransactions(sequence).WithLimit(opts.pageBy)
		}, transactionsTable))
	cmd.AddCommand(ledgerScopedListCommand("operations", "List a ledger's operations",
		func(sequence uint32, opts pagerOptions) horizon.LedgerOperations {
			return horizon.NewLedgerOperations(sequence).WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(ledgerScopedListCommand("payments", "List a ledger's payments",
		func(sequence uint32, opts pagerOptions) horizon.LedgerPayments {
			return horizon.NewLedgerPayments(sequence).WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(ledgerScopedListCommand("effects", "List a ledger's effects",
		func(sequence uint32, opts pagerOptions) horizon.LedgerEffects {
			return horizon.NewLedgerEffects(sequence).WithLimit(opts.pageBy)
		}, effectsTable))

	return cmd
}

func parseLedgerSequence(arg string) (uint32, error) {
	sequence, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing ledger sequence %q: %w", arg, err)
	}

	return uint32(sequence), nil
}

func newLedgerGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SEQUENCE",
		Short: "Show one ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := parseLedgerSequence(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ledger, err := horizon.Fetch(cmd.Context(), client, horizon.NewLedgerDetails(sequence))
			if err != nil {
				return fmt.Errorf("fetching ledger: %w", err)
			}

			return renderOutput(ledger, func() error { return ledgersTable([]horizon.Ledger{*ledger}) })
		},
	}
}

// ledgerScopedListCommand builds a list subcommand over a collection scoped
// to one ledger.
func ledgerScopedListCommand[R any, E horizon.Pageable[R, E]](
	use, short string,
	build func(sequence uint32, opts pagerOptions) E,
	render func([]R) error,
) *cobra.Command {
	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   use + " SEQUENCE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := parseLedgerSequence(args[0])
			if err != nil {
				return err
			}

			opts, err := raw.options()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			endpoint := build(sequence, opts).WithCursor(raw.cursor).WithOrder(opts.order)

			return pageRecords(cmd.Context(), client, endpoint, opts, render)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)

	return cmd
}
