package commands

import (
	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// NewEffectsCommand creates the effects command group.
func NewEffectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "effects",
		Aliases: []string{"effect"},
		Short:   "Browse ledger effects",
	}

	cmd.AddCommand(listCommand("list", "List effects",
		func(opts pagerOptions) horizon.Effects {
			return horizon.NewEffects().WithLimit(opts.pageBy)
		}, effectsTable))

	return cmd
}
