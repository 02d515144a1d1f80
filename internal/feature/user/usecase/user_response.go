package usecase

import (
	"time"

	"account_backend/internal/feature/user/domain/entity"
)

// UserResponse is the sanitized view of a user returned by every operation.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaginatedUserResponse is one page of users.
type PaginatedUserResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// NewUserResponse builds the sanitized view from the entity snapshot.
func NewUserResponse(u *entity.User) UserResponse {
	snap := u.ToObject()
	return UserResponse{
		ID:        snap.ID,
		Name:      snap.Name,
		Email:     snap.Email,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
}
