package commands

import (
	"github.com/spf13/cobra"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

// listCommand builds a list subcommand over a global collection. The endpoint
// constructor binds the concrete collection; the pager drives it.
func listCommand[R any, E horizon.Pageable[R, E]](
	use, short string,
	build func(opts pagerOptions) E,
	render func([]R) error,
) *cobra.Command {
	var raw rawPagerFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := raw.options()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			endpoint := build(opts).WithCursor(raw.cursor).WithOrder(opts.order)

			return pageRecords(cmd.Context(), client, endpoint, opts, render)
		},
	}

	addPagerFlags(cmd.Flags(), &raw)

	return cmd
}
