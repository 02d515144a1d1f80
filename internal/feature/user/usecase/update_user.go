package usecase

import (
	"context"

	"account_backend/internal/feature/user/domain/valueobject"
)

// UpdateUserRequest carries a partial update. Nil or empty fields are left untouched.
type UpdateUserRequest struct {
	UserID   string
	Name     *string
	Email    *string
	Password *string
}

// UpdateUserUsecase applies a partial update to one user.
type UpdateUserUsecase struct {
	users UserRepository
}

func NewUpdateUserUsecase(users UserRepository) *UpdateUserUsecase {
	return &UpdateUserUsecase{users: users}
}

// Execute loads the user, applies each present field and persists the result.
// The email uniqueness query only runs when the normalized email actually changes.
func (uc *UpdateUserUsecase) Execute(ctx context.Context, req UpdateUserRequest) (*UserResponse, error) {
	user, err := uc.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, UserNotFound(req.UserID)
	}

	if present(req.Email) {
		email, err := valueobject.NewEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if !user.Email().Equals(email) {
			exists, err := uc.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailAlreadyInUse
			}
			user.UpdateEmail(email)
		}
	}

	if present(req.Name) {
		if err := user.UpdateName(*req.Name); err != nil {
			return nil, err
		}
	}

	if present(req.Password) {
		password, err := valueobject.NewPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		if err := user.UpdatePassword(password); err != nil {
			return nil, err
		}
	}

	updated, err := uc.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	resp := NewUserResponse(updated)
	return &resp, nil
}

func present(s *string) bool {
	return s != nil && *s != ""
}
