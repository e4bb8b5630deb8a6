package commands

import (
	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewTradesCommand creates the trades command group.
func NewTradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trades",
		Aliases: []string{"trade"},
		Short:   "Browse trades and trade aggregations",
	}

	cmd.AddCommand(newTradesListCommand())
	cmd.AddCommand(newTradeAggregationsCommand())

	return cmd
}

func newTradesListCommand() *cobra.Command {
	var (
		base    string
		counter string
		offerID int64
	)

	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := raw.options()
			if err != nil {
				return err
			}

			endpoint := horizon.NewTrades().
				WithLimit(opts.pageBy).
				WithCursor(raw.cursor).
				WithOrder(opts.order)

			if base != "" && counter != "" {
				baseAsset, err := parseAsset(base)
				if err != nil {
					return err
				}

				counterAsset, err := parseAsset(counter)
				if err != nil {
					return err
				}

				endpoint = endpoint.WithAssetPair(baseAsset, counterAsset)
			}

			if offerID > 0 {
				endpoint = endpoint.WithOfferID(offerID)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return pageRecords(cmd.Context(), client, endpoint, opts, tradesTable)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)
	cmd.Flags().StringVar(&base, "base", "", "base asset ('native' or CODE:ISSUER)")
	cmd.Flags().StringVar(&counter, "counter", "", "counter asset ('native' or CODE:ISSUER)")
	cmd.Flags().Int64Var(&offerID, "offer-id", 0, "only trades that filled this offer")

	return cmd
}

func newTradeAggregationsCommand() *cobra.Command {
	var (
		base       string
		counter    string
		resolution string
		startTime  int64
		endTime    int64
	)

	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   "aggregations",
		Short: "Show bucketed trade history for an asset pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseAsset, err := parseAsset(base)
			if err != nil {
				return err
			}

			counterAsset, err := parseAsset(counter)
			if err != nil {
				return err
			}

			segment, err := parseResolution(resolution)
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

			endpoint := horizon.NewTradeAggregations(baseAsset, counterAsset, segment).
				WithStartTime(startTime).
				WithEndTime(endTime).
				WithLimit(opts.pageBy).
				WithCursor(raw.cursor).
				WithOrder(opts.order)

			return pageRecords(cmd.Context(), client, endpoint, opts, aggregationsTable)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)
	cmd.Flags().StringVar(&base, "base", "native", "base asset ('native' or CODE:ISSUER)")
	cmd.Flags().StringVar(&counter, "counter", "native", "counter asset ('native' or CODE:ISSUER)")
	cmd.Flags().StringVar(&resolution, "resolution", "1h", "segment duration (1m, 5m, 15m, 1h, 1d, 1w)")
	cmd.Flags().Int64Var(&startTime, "start-time", 0, "lower bound, milliseconds since the Unix epoch")
	cmd.Flags().Int64Var(&endTime, "end-time", 0, "upper bound, milliseconds since the Unix epoch")

	return cmd
}
