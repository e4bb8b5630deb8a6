package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lumenwire-io/horizon/internal/relay"
	"github.com/lumenwire-io/horizon/pkg/horizon"
)

type watchFlags struct {
	cursor     string
	resume     bool
	saveCursor bool
	natsURL    string
	natsPrefix string
}

// NewWatchCommand creates the watch command, a live tail of one of the
// streaming collections.
func NewWatchCommand() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "watch STREAM",
		Short: "Tail a live stream of records",
		Long: "Tail one of the streaming collections (ledgers, transactions, " +
			"operations, payments, effects) as records are produced. Each record " +
			"is printed as one JSON line. With --nats-url, records are also " +
			"republished to a NATS subject named after the stream.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "ledgers":
				return runWatch[horizon.Ledger](cmd, horizon.NewLedgers(), args[0], flags)
			case "transactions":
				return runWatch[horizon.Transaction](cmd, horizon.NewTransactions(), args[0], flags)
			case "operations":
				return runWatch[horizon.Operation](cmd, horizon.NewOperations(), args[0], flags)
			case "payments":
				return runWatch[horizon.Operation](cmd, horizon.NewPayments(), args[0], flags)
			case "effects":
				return runWatch[horizon.Effect](cmd, horizon.NewEffects(), args[0], flags)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownStream, args[0])
			}
		},
	}

	cmd.Flags().StringVar(&flags.cursor, "cursor", "", "resume after this paging token (default: only new events)")
	cmd.Flags().BoolVar(&flags.resume, "resume", false, "resume from the cursor saved by a previous --save-cursor run")
	cmd.Flags().BoolVar(&flags.saveCursor, "save-cursor", false, "save the last delivered cursor to the config file on exit")
	cmd.Flags().StringVar(&flags.natsURL, "nats-url", "", "republish records to this NATS server")
	cmd.Flags().StringVar(&flags.natsPrefix, "nats-subject", "horizon", "subject prefix for republished records")

	return cmd
}

func runWatch[R any](cmd *cobra.Command, endpoint horizon.StreamEndpoint[R], stream string, flags watchFlags) error {
	cursor := flags.cursor
	if flags.resume {
		cursor = viper.GetString("cursors." + stream)
		if cursor == "" {
			return fmt.Errorf("%w: %q", ErrNoSavedCursor, stream)
		}
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	var publisher relay.Publisher

	if flags.natsURL != "" {
		publisher, err = relay.Connect(relay.Config{
			URL:           flags.natsURL,
			Name:          "horizon-watch",
			SubjectPrefix: flags.natsPrefix,
		})
		if err != nil {
			return err
		}

		defer func() {
			closeErr := publisher.Close()
			if closeErr != nil {
				fmt.Fprintf(os.Stderr, "closing relay: %v\n", closeErr)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sub, err := horizon.Stream(ctx, client, endpoint, cursor)
	if err != nil {
		return err
	}

	defer sub.Close()

	err = consumeStream(sub, stream, publisher)

	if flags.saveCursor {
		saveErr := saveCursor(stream, sub.LastCursor())
		if saveErr != nil {
			fmt.Fprintf(os.Stderr, "saving cursor: %v\n", saveErr)
		}
	}

	return err
}

func consumeStream[R any](sub *horizon.Subscription[R], stream string, publisher relay.Publisher) error {
	encoder := json.NewEncoder(os.Stdout)

	for {
		select {
		case notice := <-sub.Notices():
			fmt.Fprintf(os.Stderr, "stream disconnected, retrying in %s: %v\n", notice.Delay, notice.Err)
		case event, ok := <-sub.Events():
			if !ok {
				// Events closes on caller cancellation or a terminal
				// rejection; only the latter is an error.
				return sub.Err()
			}

			err := encoder.Encode(event.Record)
			if err != nil {
				return fmt.Errorf("encoding record: %w", err)
			}

			publishErr := relayRecord(publisher, stream, event.Record)
			if publishErr != nil {
				fmt.Fprintf(os.Stderr, "relaying record: %v\n", publishErr)
			}
		}
	}
}

// relayRecord republishes one record when a relay is configured.
func relayRecord(publisher relay.Publisher, stream string, record any) error {
	if publisher == nil {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record for relay: %w", err)
	}

	return publisher.Publish(stream, data)
}

// saveCursor persists the stream's resume position in the config file.
func saveCursor(stream, cursor string) error {
	if cursor == "" {
		return nil
	}

	viper.Set("cursors."+stream, cursor)

	return persistConfig()
}
