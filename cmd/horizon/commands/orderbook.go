package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewOrderbookCommand creates the orderbook command.
func NewOrderbookCommand() *cobra.Command {
	var (
		selling string
		buying  string
		limit   uint
	)

	cmd := &cobra.Command{
		Use:   "orderbook",
		Short: "Show the order book for an asset pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sellingAsset, err := parseAsset(selling)
			if err != nil {
				return err
			}

			buyingAsset, err := parseAsset(buying)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			endpoint := horizon.NewOrderbookDetails(sellingAsset, buyingAsset)
			if limit > 0 {
				endpoint = endpoint.WithLimit(limit)
			}

			book, err := horizon.Fetch(cmd.Context(), client, endpoint)
			if err != nil {
				return fmt.Errorf("fetching order book: %w", err)
			}

			return renderOutput(book, func() error { return orderbookTable(book) })
		},
	}

	cmd.Flags().StringVar(&selling, "selling", "native", "asset being sold ('native' or CODE:ISSUER)")
	cmd.Flags().StringVar(&buying, "buying", "native", "asset being bought ('native' or CODE:ISSUER)")
	cmd.Flags().UintVar(&limit, "limit", 0, "price levels per side")

	return cmd
}
