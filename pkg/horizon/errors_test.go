package horizon_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenwire-io/horizon/pkg/horizon"
)

func TestParseProblem(t *testing.T) {
	t.Parallel()
	t.Run("valid problem document", func(t *testing.T) {
		t.Parallel()

		body := `{
			"type": "https://stellar.org/horizon-errors/not_found",
			"title": "Resource Missing",
			"status": 404,
			"detail": "The resource at the url requested was not found."
		}`

		problem := horizon.ParseProblem(404, []byte(body))
		require.NotNil(t, problem)
		assert.Equal(t, 404, problem.Status)
		assert.Equal(t, horizon.ProblemNotFound, problem.Kind())
		assert.Contains(t, problem.Error(), "Resource Missing")
	})

	t.Run("unparseable body synthesizes a problem", func(t *testing.T) {
		t.Parallel()

		problem := horizon.ParseProblem(502, []byte("<html>bad gateway</html>"))
		require.NotNil(t, problem)
		assert.Equal(t, 502, problem.Status)
		assert.Equal(t, horizon.ProblemUnknown, problem.Kind())
	})

	t.Run("bare type token", func(t *testing.T) {
		t.Parallel()

		problem := horizon.ParseProblem(400, []byte(`{"type": "bad_request", "title": "Bad Request", "status": 400}`))
		assert.Equal(t, horizon.ProblemBadRequest, problem.Kind())
	})

	t.Run("unrecognized type maps to unknown", func(t *testing.T) {
		t.Parallel()

		problem := horizon.ParseProblem(418, []byte(`{"type": "teapot", "title": "Teapot", "status": 418}`))
		assert.Equal(t, horizon.ProblemUnknown, problem.Kind())
	})
}

func TestProblemPredicates(t *testing.T) {
	t.Parallel()

	notFound := &horizon.Problem{Type: "https://stellar.org/horizon-errors/not_found", Status: 404}
	rateLimited := &horizon.Problem{Type: "rate_limit_exceeded", Status: 429}

	assert.True(t, horizon.IsNotFound(notFound))
	assert.False(t, horizon.IsNotFound(rateLimited))
	assert.True(t, horizon.IsRateLimited(rateLimited))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("fetching /accounts/GA6HC: %w", notFound)
	assert.True(t, horizon.IsNotFound(wrapped))

	assert.False(t, horizon.IsNotFound(errors.New("plain error")))
	assert.False(t, horizon.IsNotFound(nil))
}

func TestProblem_InvalidField(t *testing.T) {
	t.Parallel()

	problem := &horizon.Problem{
		Type:   "bad_request",
		Status: 400,
		Extras: map[string]interface{}{"invalid_field": "cursor"},
	}
	assert.Equal(t, "cursor", problem.InvalidField())

	empty := &horizon.Problem{Type: "bad_request", Status: 400}
	assert.Empty(t, empty.InvalidField())
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := &horizon.DecodeError{Kind: horizon.KindLedger, Err: cause}

	assert.True(t, horizon.IsDecodeError(err))
	assert.True(t, horizon.IsDecodeError(fmt.Errorf("wrapped: %w", err)))
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ledger")

	assert.False(t, horizon.IsDecodeError(&horizon.Problem{Status: 404}))
}
