package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "Browse transactions",
	}

	cmd.AddCommand(listCommand("list", "List transactions",
		func(opts pagerOptions) horizon.Transactions {
			return horizon.NewTransactions().WithLimit(opts.pageBy)
		}, transactionsTable))
	cmd.AddCommand(newTransactionGetCommand())
	cmd.AddCommand(transactionScopedListCommand("operations", "List a transaction's operations",
		func(hash string, opts pagerOptions) horizon.TransactionOperations {
			return horizon.NewTransactionOperations(hash).WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(transactionScopedListCommand("payments", "List a transaction's payments",
		func(hash string, opts pagerOptions) horizon.TransactionPayments {
			return horizon.NewTransactionPayments(hash).WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(transactionScopedListCommand("effects", "List a transaction's effects",
		func(hash string, opts pagerOptions) horizon.TransactionEffects {
			return horizon.NewTransactionEffects(hash).WithLimit(opts.pageBy)
		}, effectsTable))

	return cmd
}

func newTransactionGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASH",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tx, err := horizon.Fetch(cmd.Context(), client, horizon.NewTransactionDetails(args[0]))
			if err != nil {
				return fmt.Errorf("fetching transaction: %w", err)
			}

			return renderOutput(tx, func() error {
				return transactionsTable([]horizon.Transaction{*tx})
			})
		},
	}
}

// transactionScopedListCommand builds a list subcommand over a collection
// scoped to one transaction.
func transactionScopedListCommand[R any, E horizon.Pageable[R, E]](
	use, short string,
	build func(hash string, opts pagerOptions) E,
	render func([]R) error,
) *cobra.Command {
	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   use + " HASH",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := raw.options()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			endpoint := build(args[0], opts).WithCursor(raw.cursor).WithOrder(opts.order)

			return pageRecords(cmd.Context(), client, endpoint, opts, render)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)

	return cmd
}
