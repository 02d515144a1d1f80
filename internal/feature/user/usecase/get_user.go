package usecase

import "context"

// GetUserUsecase loads one user by id.
type GetUserUsecase struct {
	users UserRepository
}

func NewGetUserUsecase(users UserRepository) *GetUserUsecase {
	return &GetUserUsecase{users: users}
}

// Execute returns the sanitized user, or a NotFound error.
func (uc *GetUserUsecase) Execute(ctx context.Context, id string) (*UserResponse, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, UserNotFound(id)
	}
	resp := NewUserResponse(user)
	return &resp, nil
}
