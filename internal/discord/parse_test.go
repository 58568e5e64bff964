package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolFlag(t *testing.T) {
	for _, token := range []string{"true", "yes", "1", "y", "YES", " True "} {
		value, err := ParseBoolFlag(token)
		require.NoError(t, err, "token %q", token)
		assert.True(t, value, "token %q", token)
	}

	for _, token := range []string{"", "false", "no", "0", "n", "NO"} {
		value, err := ParseBoolFlag(token)
		require.NoError(t, err, "token %q", token)
		assert.False(t, value, "token %q", token)
	}

	// Unrecognized tokens are an error, not silently false.
	for _, token := range []string{"maybe", "yeah", "2", "royale"} {
		_, err := ParseBoolFlag(token)
		assert.ErrorIs(t, err, ErrInvalidArgument, "token %q", token)
	}
}
