package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, CheckPassword("pw1", hash))
	assert.False(t, CheckPassword("pw2", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("pw1", 4)
	require.NoError(t, err)
	h2, err := HashPassword("pw1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "each hash carries its own salt")
}
