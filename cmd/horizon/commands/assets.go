package commands

import (
	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Browse the network's asset directory",
	}

	cmd.AddCommand(newAssetsListCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var code, issuer string

	cmd := listCommand("list", "List known assets",
		func(opts pagerOptions) horizon.Assets {
			endpoint := horizon.NewAssets().WithLimit(opts.pageBy)

			if code != "" {
				endpoint = endpoint.WithCode(code)
			}

			if issuer != "" {
				endpoint = endpoint.WithIssuer(issuer)
			}

			return endpoint
		}, assetsTable)

	cmd.Flags().StringVar(&code, "code", "", "filter by asset code")
	cmd.Flags().StringVar(&issuer, "issuer", "", "filter by issuing account")

	return cmd
}
