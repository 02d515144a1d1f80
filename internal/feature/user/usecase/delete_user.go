package usecase

import "context"

// DeleteUserUsecase removes one user by id.
type DeleteUserUsecase struct {
	users UserRepository
}

func NewDeleteUserUsecase(users UserRepository) *DeleteUserUsecase {
	return &DeleteUserUsecase{users: users}
}

// Execute deletes the user, or returns a NotFound error when it does not exist.
func (uc *DeleteUserUsecase) Execute(ctx context.Context, id string) error {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return UserNotFound(id)
	}
	return uc.users.Delete(ctx, id)
}
