package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidResponseError(t *testing.T) {
	reason := errors.New("unexpected end of JSON input")
	err := &InvalidResponseError{Raw: "not json at all", Reason: reason}

	t.Run("matches_sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("survives_wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("generate: %w", err)

		var target *InvalidResponseError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "not json at all", target.Raw)
	})

	t.Run("message_includes_reason", func(t *testing.T) {
		assert.Contains(t, err.Error(), "invalid response from language model")
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
	})
}
