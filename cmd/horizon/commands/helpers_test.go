package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

func TestParseOrder(t *testing.T) {
	t.Parallel()

	order, err := parseOrder("asc")
	require.NoError(t, err)
	assert.Equal(t, horizon.OrderAsc, order)

	order, err = parseOrder("")
	require.NoError(t, err)
	assert.Empty(t, order)

	_, err = parseOrder("upwards")
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestParseAsset(t *testing.T) {
	t.Parallel()

	native, err := parseAsset("native")
	require.NoError(t, err)
	assert.True(t, native.IsNative())

	credit, err := parseAsset("MOBI:GA6HC")
	require.NoError(t, err)
	assert.Equal(t, "credit_alphanum4", credit.Type)
	assert.Equal(t, "MOBI", credit.Code)
	assert.Equal(t, "GA6HC", credit.Issuer)

	_, err = parseAsset("MOBI")
	require.ErrorIs(t, err, ErrInvalidAsset)

	_, err = parseAsset(":GA6HC")
	require.ErrorIs(t, err, ErrInvalidAsset)
}

func TestParseResolution(t *testing.T) {
	t.Parallel()

	resolution, err := parseResolution("5m")
	require.NoError(t, err)
	assert.Equal(t, horizon.Resolution5m, resolution)

	_, err = parseResolution("2h")
	require.ErrorIs(t, err, ErrUnknownResolution)
}

func TestServerURL(t *testing.T) {
	// Mutates global viper state; no t.Parallel.
	t.Cleanup(viper.Reset)

	viper.Reset()
	assert.Equal(t, "https://horizon.stellar.org", serverURL())

	viper.Set("network", NetworkTestnet)
	assert.Equal(t, "https://horizon-testnet.stellar.org", serverURL())

	viper.Set("server", "http://localhost:8000")
	assert.Equal(t, "http://localhost:8000", serverURL())
}
