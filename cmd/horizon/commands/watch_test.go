package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	closed   bool
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)

	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true

	return nil
}

func TestRelayRecord(t *testing.T) {
	t.Parallel()
	t.Run("publishes the encoded record under the stream subject", func(t *testing.T) {
		t.Parallel()

		publisher := &fakePublisher{}
		ledger := horizon.Ledger{Hash: "abc", Sequence: 7}

		require.NoError(t, relayRecord(publisher, "ledgers", ledger))
		require.NoError(t, relayRecord(publisher, "ledgers", ledger))

		require.Len(t, publisher.subjects, 2)
		assert.Equal(t, "ledgers", publisher.subjects[0])
		assert.Contains(t, string(publisher.payloads[0]), `"hash":"abc"`)
	})

	t.Run("no relay configured is a no-op", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, relayRecord(nil, "ledgers", horizon.Ledger{}))
	})
}
