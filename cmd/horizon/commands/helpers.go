package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/lumenwire-io/horizon/internal/constants"
	"github.com/lumenwire-io/horizon/pkg/horizon"
	"github.com/lumenwire-io/horizon/pkg/horizonclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Networks selectable with --network.
const (
	NetworkPubnet  = "pubnet"
	NetworkTestnet = "testnet"
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrUnknownOrder       = errors.New("order must be 'asc' or 'desc'")
	ErrUnknownOutput      = errors.New("output must be 'table', 'json' or 'yaml'")
	ErrInvalidAsset       = errors.New("asset must be 'native' or CODE:ISSUER")
	ErrUnknownStream      = errors.New("unknown stream")
	ErrUnknownResolution  = errors.New("resolution must be one of 1m, 5m, 15m, 1h, 1d, 1w")
	ErrNoSavedCursor      = errors.New("no saved cursor for this stream")
	ErrNothingToConfigure = errors.New("nothing to configure; see --help")
)

// CreateClient builds a Horizon client from the persistent flags and the
// config file. An explicit --server wins over --network.
func CreateClient() (*horizon.Client, error) {
	config := &horizonclient.Config{
		ServerURL: serverURL(),
		Debug:     viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = stderrLogger{}
	}

	return horizonclient.New(config)
}

func serverURL() string {
	if server := viper.GetString("server"); server != "" {
		return server
	}

	if viper.GetString("network") == NetworkTestnet {
		return constants.TestnetURL
	}

	return constants.PubnetURL
}

// stderrLogger writes client diagnostics to standard error so they never mix
// with rendered output on standard out.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// parseOrder converts an --order flag value into a direction. Empty means
// the server default.
func parseOrder(value string) (horizon.Direction, error) {
	switch value {
	case "":
		return "", nil
	case string(horizon.OrderAsc):
		return horizon.OrderAsc, nil
	case string(horizon.OrderDesc):
		return horizon.OrderDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrder, value)
	}
}

// parseAsset converts a CODE:ISSUER flag value, or the literal "native",
// into an asset identifier.
func parseAsset(value string) (horizon.AssetID, error) {
	if value == "native" {
		return horizon.NativeAsset(), nil
	}

	code, issuer, found := strings.Cut(value, ":")
	if !found || code == "" || issuer == "" {
		return horizon.AssetID{}, fmt.Errorf("%w: %q", ErrInvalidAsset, value)
	}

	return horizon.CreditAsset(code, issuer), nil
}

// parseResolution converts a human resolution name into the segment duration
// Horizon accepts.
func parseResolution(value string) (horizon.Resolution, error) {
	resolutions := map[string]horizon.Resolution{
		"1m":  horizon.Resolution1m,
		"5m":  horizon.Resolution5m,
		"15m": horizon.Resolution15m,
		"1h":  horizon.Resolution1h,
		"1d":  horizon.Resolution1d,
		"1w":  horizon.Resolution1w,
	}

	resolution, ok := resolutions[value]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownResolution, value)
	}

	return resolution, nil
}
