package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type otpPayload struct {
	OTP string `json:"otp" binding:"required,len=5,numeric"`
}

func TestValidateValidPayload(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "sam@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	valErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Field names come from the json tags, not the Go struct fields.
	assert.Contains(t, valErr.Errors, "email")
	assert.Contains(t, valErr.Errors, "password")
	assert.NotContains(t, valErr.Errors, "Email")
	assert.Equal(t, "Must be a valid email address", valErr.Errors["email"])
}

func TestValidateRequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{})
	require.Error(t, err)

	valErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", valErr.Errors["email"])
}

func TestValidateOTPShape(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&otpPayload{OTP: "01234"}))

	for _, bad := range []string{"1234", "123456", "abcde"} {
		err := v.Validate(&otpPayload{OTP: bad})
		assert.Error(t, err, "otp %q", bad)
	}
}
