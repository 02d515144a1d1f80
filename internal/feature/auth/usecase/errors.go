package usecase

import "account_backend/internal/shared/apperr"

var (
	// ErrInvalidCredentials is returned when login finds no matching user.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials", nil)

	// ErrInvalidRefreshToken is returned for every refresh failure, whatever the cause.
	ErrInvalidRefreshToken = apperr.Unauthorized("Invalid refresh token", nil)
)
