// Package usecase implements the user management operations.
package usecase

import (
	"context"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
)

// UserRepository abstracts persistence of users.
// Following Go convention, the interface is declared by its consumer (usecase), not by adapters.
//
// Lookups return (nil, nil) when nothing matches. Any non-nil error is an
// infrastructure failure and is propagated unchanged by the use cases.
type UserRepository interface {
	// Save persists a new user and returns the stored state.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID returns the user with the given id, or nil.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail returns the user with the given normalized email, or nil.
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)

	// FindAll returns one page of users, newest first, and the total count.
	FindAll(ctx context.Context, page, limit int) ([]*entity.User, int64, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id string) error

	// ExistsByEmail reports whether any user holds the given email.
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
}
