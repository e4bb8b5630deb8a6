package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Browse payments and find payment paths",
	}

	cmd.AddCommand(listCommand("list", "List payments",
		func(opts pagerOptions) horizon.Payments {
			return horizon.NewPayments().WithLimit(opts.pageBy)
		}, operationsTable))
	cmd.AddCommand(newFindPathsCommand())

	return cmd
}

func newFindPathsCommand() *cobra.Command {
	var destinationAsset string

	cmd := &cobra.Command{
		Use:   "paths SOURCE DESTINATION AMOUNT",
		Short: "Find payment paths between two accounts",
		Long: "Find chains of offers that convert assets held by the source " +
			"account into the requested amount of the destination asset",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAsset(destinationAsset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			endpoint := horizon.NewFindPaths(args[0], args[1], asset, args[2])

			paths, err := horizon.Fetch(cmd.Context(), client, endpoint)
			if err != nil {
				return fmt.Errorf("finding paths: %w", err)
			}

			return renderOutput(paths, func() error { return pathsTable(paths) })
		},
	}

	cmd.Flags().StringVar(&destinationAsset, "destination-asset", "native",
		"asset to deliver ('native' or CODE:ISSUER)")

	return cmd
}
