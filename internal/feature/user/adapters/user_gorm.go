// Package adapters provides the GORM-backed user repository.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
	"account_backend/internal/feature/user/usecase"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository returns a UserRepository backed by the given gorm.DB.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Save inserts a new user.
// A unique violation on email is reported as usecase.ErrEmailAlreadyInUse.
func (r *userGorm) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	m := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, usecase.ErrEmailAlreadyInUse
		}
		return nil, err
	}
	return m.ToEntity()
}

func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ToEntity()
}

func (r *userGorm) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email.Value()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ToEntity()
}

// FindAll returns one page ordered by creation time, newest first, and the total row count.
func (r *userGorm) FindAll(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []UserModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]*entity.User, 0, len(rows))
	for i := range rows {
		u, err := rows[i].ToEntity()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, nil
}

// Update writes every mutable column of an existing user.
// A row deleted since it was read yields the NotFound error.
func (r *userGorm) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	m := UserModelFromEntity(u)
	res := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":       m.Name,
			"email":      m.Email,
			"password":   m.Password,
			"updated_at": m.UpdatedAt,
		})
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return nil, usecase.ErrEmailAlreadyInUse
		}
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, usecase.UserNotFound(m.ID)
	}
	return u, nil
}

func (r *userGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{}).Error
}

func (r *userGorm) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("email = ?", email.Value()).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// isUniqueViolation recognizes duplicate-key errors from every supported driver,
// with or without gorm's TranslateError option.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// SQLite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
