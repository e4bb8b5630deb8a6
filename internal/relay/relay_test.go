package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_RequiresURL(t *testing.T) {
	t.Parallel()

	_, err := Connect(Config{})
	require.ErrorIs(t, err, ErrURLRequired)
}

func TestNATSRelay_Publish_RequiresSubject(t *testing.T) {
	t.Parallel()

	relay := &NATSRelay{}

	err := relay.Publish("", nil)
	assert.ErrorIs(t, err, ErrSubjectRequired)
}
