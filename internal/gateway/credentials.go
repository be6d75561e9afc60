package gateway

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials checks the shape of a sign-up request
func ValidateCredentials(email, password string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	if len([]rune(password)) < MinPasswordLen {
		return ErrWeakPassword
	}
	return nil
}
