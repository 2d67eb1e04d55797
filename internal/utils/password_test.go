package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrifusion/agrifusion-backend/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	ok, err := utils.CheckPasswordHash("password123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	// Wrong password is a clean false, not an error.
	ok, err := utils.CheckPasswordHash("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	ok, err := utils.CheckPasswordHash("password123", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, ok)
}
