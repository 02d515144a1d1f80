package valueobject

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/shared/apperr"
)

const (
	// PasswordCost is the bcrypt work factor used for new hashes.
	PasswordCost = 10

	minPasswordLength = 6
	maxPasswordLength = 100

	// bcrypt only reads the first 72 bytes of its input.
	bcryptMaxBytes = 72
)

// Password holds a bcrypt hash. The plaintext is never kept.
type Password struct {
	hash string
}

// NewPassword validates plain and hashes it with a random salt.
func NewPassword(plain string) (*Password, error) {
	if err := ValidatePlainPassword(plain); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword(truncate(plain), PasswordCost)
	if err != nil {
		return nil, err
	}
	return &Password{hash: string(hashed)}, nil
}

// PasswordFromHash wraps a hash loaded from storage.
func PasswordFromHash(hash string) (*Password, error) {
	if strings.TrimSpace(hash) == "" {
		return nil, apperr.Domain("Password hash cannot be empty")
	}
	return &Password{hash: hash}, nil
}

// ValidatePlainPassword checks the plaintext length rules without hashing.
func ValidatePlainPassword(plain string) error {
	if strings.TrimSpace(plain) == "" {
		return apperr.Domain("Password cannot be empty")
	}
	n := utf8.RuneCountInString(plain)
	if n < minPasswordLength {
		return apperr.Domain("Password must be at least 6 characters long")
	}
	if n > maxPasswordLength {
		return apperr.Domain("Password cannot exceed 100 characters")
	}
	return nil
}

// Compare reports whether plain matches the stored hash.
func (p *Password) Compare(plain string) bool {
	if p == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), truncate(plain)) == nil
}

// Value returns the hash.
func (p *Password) Value() string {
	if p == nil {
		return ""
	}
	return p.hash
}

// Equals compares raw hash bytes. Two hashes of one plaintext differ by salt.
func (p *Password) Equals(other *Password) bool {
	if p == nil || other == nil {
		return false
	}
	return p.hash == other.hash
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}
