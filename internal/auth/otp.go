package auth

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// OTPLength is the number of digits in a verification code.
const OTPLength = 5

// GenerateOTP returns a random numeric one-time code. Digits are drawn from
// crypto/rand; leading zeros are allowed, so the code is always OTPLength
// characters.
func GenerateOTP() (string, error) {
	var sb strings.Builder
	for i := 0; i < OTPLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
