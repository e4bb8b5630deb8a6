package horizon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

func TestDecodeRecord(t *testing.T) {
	t.Parallel()
	t.Run("dispatches to the type named by the kind", func(t *testing.T) {
		t.Parallel()

		record, err := horizon.DecodeRecord(horizon.KindLedger, []byte(`{"id": "aaa", "sequence": 42}`))
		require.NoError(t, err)
		assert.Equal(t, horizon.KindLedger, record.Kind())

		ledger, ok := record.(*horizon.Ledger)
		require.True(t, ok)
		assert.Equal(t, int32(42), ledger.Sequence)

		record, err = horizon.DecodeRecord(horizon.KindTransaction, []byte(`{"hash": "t1", "paging_token": "1001"}`))
		require.NoError(t, err)

		transaction, ok := record.(*horizon.Transaction)
		require.True(t, ok)
		assert.Equal(t, "t1", transaction.Hash)
	})

	t.Run("an unknown kind is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := horizon.DecodeRecord(horizon.Kind("starfish"), []byte(`{}`))
		require.ErrorIs(t, err, horizon.ErrUnknownKind)
	})

	t.Run("a mismatched body is a decode error carrying the kind", func(t *testing.T) {
		t.Parallel()

		_, err := horizon.DecodeRecord(horizon.KindLedger, []byte(`"not an object"`))
		require.Error(t, err)
		assert.True(t, horizon.IsDecodeError(err))

		decodeErr := &horizon.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, horizon.KindLedger, decodeErr.Kind)
	})
}
