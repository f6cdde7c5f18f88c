package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash, "hash must not be the plaintext")

	assert.True(t, VerifyPassword("pw123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry a fresh salt")
	assert.True(t, VerifyPassword("pw123", first))
	assert.True(t, VerifyPassword("pw123", second))
}

func TestVerifyPasswordBadHash(t *testing.T) {
	assert.False(t, VerifyPassword("pw123", "not-a-bcrypt-hash"))
}
