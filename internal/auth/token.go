package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token purposes. Session tokens gate API requests; reset tokens are only
// good for completing a password reset.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password_reset"
)

// ResetTokenTTL bounds how long a password-reset link stays valid.
const ResetTokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by every issued token.
type Claims struct {
	AccountID string `json:"account_id"`
	Purpose   string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 session token bound to the account id.
func GenerateToken(accountID, secret string, ttl time.Duration) (string, error) {
	return signToken(accountID, PurposeSession, secret, ttl)
}

// GenerateResetToken issues a short-lived password-reset token.
func GenerateResetToken(accountID, secret string) (string, error) {
	return signToken(accountID, PurposePasswordReset, secret, ResetTokenTTL)
}

func signToken(accountID, purpose, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		Purpose:   purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
