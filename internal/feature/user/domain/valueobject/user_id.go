package valueobject

import (
	"regexp"

	"github.com/google/uuid"

	"account_backend/internal/shared/apperr"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// UserID is a version 4 UUID string.
type UserID struct {
	value string
}

// NewUserID validates value, or generates a fresh id when value is empty.
func NewUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{value: uuid.NewString()}, nil
	}
	if !IsValidUUID(value) {
		return UserID{}, apperr.InvalidValue("UserId", value, "Must be a valid UUID")
	}
	return UserID{value: value}, nil
}

// GenerateUserID returns a new random id.
func GenerateUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// IsValidUUID reports whether s has the shape of a version 4 UUID.
func IsValidUUID(s string) bool {
	return uuidV4Pattern.MatchString(s)
}

// Value returns the id string.
func (id UserID) Value() string {
	return id.value
}

// IsZero reports whether id was never initialized.
func (id UserID) IsZero() bool {
	return id.value == ""
}

// Equals compares ids by value.
func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}

func (id UserID) String() string {
	return id.value
}
