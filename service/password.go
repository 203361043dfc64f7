package service

import (
	"regexp"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password policy: at least 8 characters, at least one letter and one
// digit, drawn only from letters, digits and a small symbol set.
var passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]+$`)

// ValidatePassword returns ErrWeakPassword if the password violates policy.
func ValidatePassword(password string) error {
	if len(password) < 8 || !passwordCharset.MatchString(password) {
		return ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
