package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts", "acc"},
		Short:   "Inspect accounts",
		Long:    "Look up an account's details and the collections scoped to it",
	}

	cmd.AddCommand(newAccountDetailsCommand())
	cmd.AddCommand(newAccountDataCommand())
	cmd.AddCommand(newAccountTransactionsCommand())
	cmd.AddCommand(newAccountOperationsCommand())
	cmd.AddCommand(newAccountPaymentsCommand())
	cmd.AddCommand(newAccountEffectsCommand())
	cmd.AddCommand(newAccountOffersCommand())
	cmd.AddCommand(newAccountTradesCommand())

	return cmd
}

func newAccountDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details ADDRESS",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := horizon.Fetch(cmd.Context(), client, horizon.NewAccountDetails(args[0]))
			if err != nil {
				return fmt.Errorf("fetching account: %w", err)
			}

			return renderOutput(account, func() error { return accountTable(account) })
		},
	}
}

func newAccountDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data ADDRESS KEY",
		Short: "Show one data entry attached to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			datum, err := horizon.Fetch(cmd.Context(), client, horizon.NewAccountData(args[0], args[1]))
			if err != nil {
				return fmt.Errorf("fetching account data: %w", err)
			}

			return renderOutput(datum, func() error { return datumTable(datum) })
		},
	}
}

// accountListCommand builds a list subcommand scoped to one account. The
// endpoint constructor binds the concrete collection.
func accountListCommand[R any, E horizon.Pageable[R, E]](
	use, short string,
	build func(accountID string, opts pagerOptions) E,
	render func([]R) error,
) *cobra.Command {
	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   use + " ADDRESS",
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

func newAccountTransactionsCommand() *cobra.Command {
	return accountListCommand("transactions", "List an account's transactions",
		func(accountID string, opts pagerOptions) horizon.AccountTransactions {
			return horizon.NewAccountTransactions(accountID).WithLimit(opts.pageBy)
		}, transactionsTable)
}

func newAccountOperationsCommand() *cobra.Command {
	return accountListCommand("operations", "List an account's operations",
		func(accountID string, opts pagerOptions) horizon.AccountOperations {
			return horizon.NewAccountOperations(accountID).WithLimit(opts.pageBy)
		}, operationsTable)
}

func newAccountPaymentsCommand() *cobra.Command {
	return accountListCommand("payments", "List an account's payments",
		func(accountID string, opts pagerOptions) horizon.AccountPayments {
			return horizon.NewAccountPayments(accountID).WithLimit(opts.pageBy)
		}, operationsTable)
}

func newAccountEffectsCommand() *cobra.Command {
	return accountListCommand("effects", "List an account's effects",
		func(accountID string, opts pagerOptions) horizon.AccountEffects {
			return horizon.NewAccountEffects(accountID).WithLimit(opts.pageBy)
		}, effectsTable)
}

func newAccountOffersCommand() *cobra.Command {
	return accountListCommand("offers", "List an account's open offers",
		func(accountID string, opts pagerOptions) horizon.AccountOffers {
			return horizon.NewAccountOffers(accountID).WithLimit(opts.pageBy)
		}, offersTable)
}

func newAccountTradesCommand() *cobra.Command {
	return accountListCommand("trades", "List an account's trades",
		func(accountID string, opts pagerOptions) horizon.AccountTrades {
			return horizon.NewAccountTrades(accountID).WithLimit(opts.pageBy)
		}, tradesTable)
}
