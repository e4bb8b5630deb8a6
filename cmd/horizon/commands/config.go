package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumenwire-io/horizon/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the saved configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := struct {
				Network string            `json:"network" yaml:"network"`
				Server  string            `json:"server"  yaml:"server"`
				Output  string            `json:"output"  yaml:"output"`
				Cursors map[string]string `json:"cursors" yaml:"cursors"`
			}{
				Network: viper.GetString("network"),
				Server:  serverURL(),
				Output:  viper.GetString("output"),
				Cursors: viper.GetStringMapString("cursors"),
			}

			return renderOutput(settings, func() error {
				fmt.Fprintf(os.Stdout, "network: %s\nserver: %s\noutput: %s\n", settings.Network, settings.Server, settings.Output)

				for stream, cursor := range settings.Cursors {
					fmt.Fprintf(os.Stdout, "cursor %s: %s\n", stream, cursor)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	var (
		network string
		server  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Persist default settings in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if network == "" && server == "" {
				return ErrNothingToConfigure
			}

			if network != "" {
				if network != NetworkPubnet && network != NetworkTestnet {
					return fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
				}

				viper.Set("network", network)
			}

			if server != "" {
				viper.Set("server", server)
			}

			return persistConfig()
		},
	}

	cmd.Flags().StringVar(&network, "network", "", "default network (pubnet or testnet)")
	cmd.Flags().StringVar(&server, "server", "", "default Horizon server address")

	return cmd
}

// persistConfig writes the in-memory settings back to the config file,
// creating it on first use and keeping it readable only by the owner.
func persistConfig() error {
	err := viper.WriteConfig()
	if err != nil {
		err = viper.SafeWriteConfig()
	}

	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if path := viper.ConfigFileUsed(); path != "" {
		err = os.Chmod(path, constants.ConfigFilePerm)
		if err != nil {
			return fmt.Errorf("restricting config permissions: %w", err)
		}
	}

	return nil
}
