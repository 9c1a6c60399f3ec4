package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	signed, err := Sign("secret", "66c6248b98c56c39f018e7d5", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "66c6248b98c56c39f018e7d5", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := Sign("secret", "u1", "editor", time.Hour)
	require.NoError(t, err)

	_, err = Parse("other", signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseExpired(t *testing.T) {
	signed, err := Sign("secret", "u1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = Parse("secret", signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}
