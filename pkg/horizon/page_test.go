package horizon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageBody = `{
	"_links": {
		"self": {"href": "https://horizon.example.org/ledgers?cursor=&limit=2&order=asc"},
		"next": {"href": "https://horizon.example.org/ledgers?cursor=8589934592&limit=2&order=asc"},
		"prev": {"href": "https://horizon.example.org/ledgers?cursor=4294967296&limit=2&order=desc"}
	},
	"_embedded": {
		"records": [
			{"id": "aaa", "sequence": 1, "paging_token": "4294967296"},
			{"id": "bbb", "sequence": 2, "paging_token": "8589934592"}
		]
	}
}`

func TestPage_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	t.Run("records and links", func(t *testing.T) {
		t.Parallel()

		var page Page[Ledger]

		require.NoError(t, json.Unmarshal([]byte(pageBody), &page))
		require.Len(t, page.Records, 2)
		assert.Equal(t, int32(1), page.Records[0].Sequence)
		assert.Equal(t, int32(2), page.Records[1].Sequence)
		assert.Contains(t, page.Next, "cursor=8589934592")
		assert.Contains(t, page.Prev, "cursor=4294967296")
	})

	t.Run("missing links object", func(t *testing.T) {
		t.Parallel()

		var page Page[Ledger]

		require.NoError(t, json.Unmarshal([]byte(`{"_embedded": {"records": []}}`), &page))
		assert.Empty(t, page.Records)
		assert.Empty(t, page.Next)
		assert.Empty(t, page.Prev)
	})

	t.Run("blank href counts as absent", func(t *testing.T) {
		t.Parallel()

		var page Page[Ledger]

		body := `{"_embedded": {"records": []}, "_links": {"next": {"href": ""}}}`
		require.NoError(t, json.Unmarshal([]byte(body), &page))

		_, err := page.NextCursor()
		assert.ErrorIs(t, err, ErrMissingCursor)
	})
}

func TestPage_Cursors(t *testing.T) {
	t.Parallel()

	var page Page[Ledger]

	require.NoError(t, json.Unmarshal([]byte(pageBody), &page))

	next, err := page.NextCursor()
	require.NoError(t, err)
	assert.Equal(t, "8589934592", next)

	prev, err := page.PrevCursor()
	require.NoError(t, err)
	assert.Equal(t, "4294967296", prev)
}

func TestLinkQueryParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		href  string
		key   string
		value string
		found bool
	}{
		{"present", "https://example.org/ledgers?cursor=99&order=asc", "cursor", "99", true},
		{"blank value", "https://example.org/ledgers?cursor=", "cursor", "", false},
		{"absent key", "https://example.org/ledgers?order=asc", "cursor", "", false},
		{"empty href", "", "cursor", "", false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			value, found := linkQueryParam(test.href, test.key)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.value, value)
		})
	}
}
