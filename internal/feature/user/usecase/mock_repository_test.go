package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
)

// ErrDB is a sentinel shared between mocks and expectations.
var ErrDB = errors.New("database error")

// mockUserRepository is a function-field mock of usecase.UserRepository.
// Unset functions fall back to a neutral default; every call is counted.
type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByIDFunc      func(ctx context.Context, id string) (*entity.User, error)
	FindByEmailFunc   func(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindAllFunc       func(ctx context.Context, page, limit int) ([]*entity.User, int64, error)
	UpdateFunc        func(ctx context.Context, user *entity.User) (*entity.User, error)
	DeleteFunc        func(ctx context.Context, id string) error
	ExistsByEmailFunc func(ctx context.Context, email valueobject.Email) (bool, error)

	SaveCalls          int
	FindByIDCalls      int
	FindAllCalls       int
	UpdateCalls        int
	DeleteCalls        int
	ExistsByEmailCalls int
}

func (m *mockUserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	m.FindAllCalls++
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, page, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	m.ExistsByEmailCalls++
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// newTestUser builds a persisted-looking user with a real bcrypt hash of plain.
func newTestUser(t *testing.T, name, email, plain string) *entity.User {
	t.Helper()

	e, err := valueobject.NewEmail(email)
	require.NoError(t, err)
	p, err := valueobject.NewPassword(plain)
	require.NoError(t, err)
	u, err := entity.NewUser(entity.UserProps{Name: name, Email: e, Password: p})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string {
	return &s
}
