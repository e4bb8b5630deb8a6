package horizonclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
	"github.com/lumenwire-io/horizon/pkg/horizonclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := horizonclient.New(nil)
		require.ErrorIs(t, err, horizon.ErrConfigRequired)
	})

	t.Run("missing server address is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := horizonclient.New(&horizonclient.Config{})
		require.ErrorIs(t, err, horizon.ErrServerURLRequired)
	})

	t.Run("address normalization", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			in     string
			expect string
		}{
			{"trailing slash", "https://horizon.example.org/", "https://horizon.example.org"},
			{"bare host gets https", "horizon.example.org", "https://horizon.example.org"},
			{"http is preserved", "http://localhost:8000", "http://localhost:8000"},
		}

		for _, test := range tests {
			test := test
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()

				client, err := horizonclient.New(&horizonclient.Config{ServerURL: test.in})
				require.NoError(t, err)
				assert.Equal(t, test.expect, client.ServerURL())
			})
		}
	})
}

func TestPresets(t *testing.T) {
	t.Parallel()

	pubnet, err := horizonclient.NewPubnet()
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.stellar.org", pubnet.ServerURL())

	testnet, err := horizonclient.NewTestnet()
	require.NoError(t, err)
	assert.Equal(t, "https://horizon-testnet.stellar.org", testnet.ServerURL())
}
