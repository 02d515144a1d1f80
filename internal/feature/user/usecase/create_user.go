package usecase

import (
	"context"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
)

// CreateUserRequest is the input of CreateUser.
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}

// CreateUserUsecase creates a user without issuing tokens.
type CreateUserUsecase struct {
	users UserRepository
}

// NewCreateUserUsecase returns a CreateUserUsecase.
func NewCreateUserUsecase(users UserRepository) *CreateUserUsecase {
	return &CreateUserUsecase{users: users}
}

// Execute validates the email, checks uniqueness, hashes the password and persists the user.
func (uc *CreateUserUsecase) Execute(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	saved, err := RegisterNewUser(ctx, uc.users, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	resp := NewUserResponse(saved)
	return &resp, nil
}

// RegisterNewUser runs the shared email-check, hash and persist flow.
// The auth feature reuses it for registration.
//
// The uniqueness check and the insert are not atomic. Two concurrent
// requests with the same email can both pass the check; the unique index in
// storage rejects the second insert.
func RegisterNewUser(ctx context.Context, users UserRepository, name, rawEmail, rawPassword string) (*entity.User, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyInUse
	}

	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(entity.UserProps{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return users.Save(ctx, user)
}
