package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)

	assert.Len(t, otp, OTPLength)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "otp must be digits, got %q", otp)
	}
}

func TestGenerateOTPVaries(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		seen[otp] = struct{}{}
	}

	// 50 draws from a 100k space should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
