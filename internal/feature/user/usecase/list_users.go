package usecase

import (
	"context"
	"math"
)

const (
	// DefaultPage is used when the requested page is absent or not positive.
	DefaultPage = 1
	// DefaultLimit is used when the requested limit is absent or not positive.
	DefaultLimit = 10
	// MaxLimit caps the page size.
	MaxLimit = 100
	// MaxPage keeps (page-1)*limit within int32 for every allowed limit.
	MaxPage = math.MaxInt32 / MaxLimit
)

// ListUsersRequest selects one page. Zero values fall back to the defaults.
// Values above MaxPage/MaxLimit are clamped.
type ListUsersRequest struct {
	Page  int
	Limit int
}

// ListUsersUsecase pages through users.
type ListUsersUsecase struct {
	users UserRepository
}

func NewListUsersUsecase(users UserRepository) *ListUsersUsecase {
	return &ListUsersUsecase{users: users}
}

// Execute returns the requested page together with the pagination totals.
func (uc *ListUsersUsecase) Execute(ctx context.Context, req ListUsersRequest) (*PaginatedUserResponse, error) {
	page := req.Page
	if page <= 0 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	users, total, err := uc.users.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}

	return &PaginatedUserResponse{
		Users:      out,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// TotalPages returns ceil(total/limit); zero when total is zero.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
