package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mpcportal/admissions/internal/common"
)

// HashPassphrase produces a bcrypt hash suitable for the
// ADMIN_PASSPHRASE_HASH configuration value.
func HashPassphrase(passphrase string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassphrase compares a candidate against the configured hash.
// Mismatches collapse to common.ErrUnauthorized with no further detail;
// there is no lockout or rate limiting at this layer.
func CheckPassphrase(hash, candidate string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)); err != nil {
		return common.ErrUnauthorized
	}
	return nil
}
