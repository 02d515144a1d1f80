package adapters

import (
	"fmt"
	"time"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"uniqueIndex;size:255;not null"`
	Password  string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
// Stored rows are revalidated; a row that breaks an invariant is reported as an error.
func (m *UserModel) ToEntity() (*entity.User, error) {
	id, err := valueobject.NewUserID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("user row %q: %w", m.ID, err)
	}
	email, err := valueobject.NewEmail(m.Email)
	if err != nil {
		return nil, fmt.Errorf("user row %q: %w", m.ID, err)
	}
	password, err := valueobject.PasswordFromHash(m.Password)
	if err != nil {
		return nil, fmt.Errorf("user row %q: %w", m.ID, err)
	}
	u, err := entity.ReconstituteUser(entity.UserProps{
		ID:        id,
		Name:      m.Name,
		Email:     email,
		Password:  password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("user row %q: %w", m.ID, err)
	}
	return u, nil
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Password:  u.Password().Value(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
