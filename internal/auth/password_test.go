package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicehub_backend/pkg/apperrors"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordDiffersPerCall(t *testing.T) {
	h1, err := HashPassword("same input")
	require.NoError(t, err)
	h2, err := HashPassword("same input")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))

	err := ValidatePassword("short")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	assert.Error(t, ValidatePassword(""))
}
