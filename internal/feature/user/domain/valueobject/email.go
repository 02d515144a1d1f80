// Package valueobject defines the self-validating value types of the user feature.
package valueobject

import (
	"regexp"
	"strings"

	"account_backend/internal/shared/apperr"
)

const maxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a trimmed, lower-cased email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns its normalized form.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, apperr.InvalidValue("Email", trimmed, "Email cannot be empty")
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, apperr.InvalidValue("Email", trimmed, "Invalid email format")
	}
	if len(trimmed) > maxEmailLength {
		return Email{}, apperr.InvalidValue("Email", trimmed, "Email must not exceed 255 characters")
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// Equals compares normalized addresses.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
