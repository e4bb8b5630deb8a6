package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Date    string `json:"date"    yaml:"date"`
			}{version, commit, date}

			return renderOutput(info, func() error {
				fmt.Fprintf(os.Stdout, "horizon %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)

				return nil
			})
		},
	}
}
