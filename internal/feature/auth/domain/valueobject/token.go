// Package valueobject holds the token value objects of the auth feature.
package valueobject

import (
	"regexp"
	"strings"

	"account_backend/internal/shared/apperr"
)

// jwtPattern matches header.payload.signature in base64url.
var jwtPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// AccessToken is a signed, short-lived bearer token.
type AccessToken struct {
	value string
}

// NewAccessToken checks the three-segment shape. Claims are not inspected.
func NewAccessToken(value string) (AccessToken, error) {
	if err := validate("accessToken", value, "Access token cannot be empty", "Invalid JWT token format"); err != nil {
		return AccessToken{}, err
	}
	return AccessToken{value: value}, nil
}

func (t AccessToken) Value() string {
	return t.value
}

func (t AccessToken) Equals(other AccessToken) bool {
	return t.value == other.value
}

// RefreshToken is a signed, long-lived token used only to mint new access tokens.
type RefreshToken struct {
	value string
}

func NewRefreshToken(value string) (RefreshToken, error) {
	if err := validate("refreshToken", value, "Refresh token cannot be empty", "Invalid refresh token format"); err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{value: value}, nil
}

func (t RefreshToken) Value() string {
	return t.value
}

func (t RefreshToken) Equals(other RefreshToken) bool {
	return t.value == other.value
}

func validate(field, value, emptyReason, formatReason string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.InvalidValue(field, value, emptyReason)
	}
	if !jwtPattern.MatchString(value) {
		return apperr.InvalidValue(field, value, formatReason)
	}
	return nil
}
