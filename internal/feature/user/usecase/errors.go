package usecase

import "account_backend/internal/shared/apperr"

const userEntityName = "User"

// ErrEmailAlreadyInUse is returned when another account already holds the email.
var ErrEmailAlreadyInUse = apperr.Domain("Email already in use")

// UserNotFound is the NotFound error for a missing user id.
func UserNotFound(id string) error {
	return apperr.EntityNotFound(userEntityName, id)
}
