package auth

import (
	"golang.org/x/crypto/bcrypt"

	"practicehub_backend/pkg/apperrors"
)

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the canonical password policy: minimum 8
// characters. Character-class rules are deliberately not applied.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.ErrWeakPassword
	}
	return nil
}
