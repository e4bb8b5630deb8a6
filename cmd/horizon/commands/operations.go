package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewOperationsCommand creates the operations command group.
func NewOperationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"operation", "ops"},
		Short:   "Browse operations",
	}

	cmd.AddCommand(listCommand("list", "List operations",
		func(opts pagerOptions) horizon.Operations {
			return horizon.NewOperations().WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(newOperationGetCommand())
	cmd.AddCommand(newOperationEffectsCommand())

	return cmd
}

func parseOperationID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing operation id %q: %w", arg, err)
	}

	return id, nil
}

func newOperationGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOperationID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			operation, err := horizon.Fetch(cmd.Context(), client, horizon.NewOperationDetails(id))
			if err != nil {
				return fmt.Errorf("fetching operation: %w", err)
			}

			return renderOutput(operation, func() error {
				return operationsTable([]horizon.Operation{*operation})
			})
		},
	}
}

func newOperationEffectsCommand() *cobra.Command {
	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   "effects ID",
		Short: "List the effects of one operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOperationID(args[0])
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

			endpoint := horizon.NewOperationEffects(id).
				WithLimit(opts.pageBy).
				WithCursor(raw.cursor).
				WithOrder(opts.order)

			return pageRecords(cmd.Context(), client, endpoint, opts, effectsTable)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)

	return cmd
}
