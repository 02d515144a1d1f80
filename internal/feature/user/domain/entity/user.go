// Package entity defines the domain entities for the user feature.
package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"account_backend/internal/feature/user/domain/valueobject"
	"account_backend/internal/shared/apperr"
)

const (
	minNameLength = 3
	maxNameLength = 100
)

// now is swapped in tests to observe timestamp changes.
var now = time.Now

// UserProps carries the fields needed to build a User.
// ID and the timestamps are optional on the create path.
type UserProps struct {
	ID        valueobject.UserID
	Name      string
	Email     valueobject.Email
	Password  *valueobject.Password
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is a registered account. Users are equal when their ids match.
type User struct {
	id        valueobject.UserID
	name      string
	email     valueobject.Email
	password  *valueobject.Password
	createdAt time.Time
	updatedAt time.Time
}

// UserSnapshot is the sanitized projection of a User. It never carries the password.
type UserSnapshot struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new user, generating an id when none is given.
func NewUser(props UserProps) (*User, error) {
	if props.ID.IsZero() {
		props.ID = valueobject.GenerateUserID()
	}
	return build(props)
}

// ReconstituteUser rebuilds a user loaded from storage. It revalidates every invariant.
func ReconstituteUser(props UserProps) (*User, error) {
	if props.ID.IsZero() {
		return nil, apperr.Validation("User id is required")
	}
	return build(props)
}

func build(props UserProps) (*User, error) {
	t := now()
	if props.CreatedAt.IsZero() {
		props.CreatedAt = t
	}
	if props.UpdatedAt.IsZero() {
		props.UpdatedAt = props.CreatedAt
	}
	if err := validateName(props.Name); err != nil {
		return nil, err
	}
	if err := validatePassword(props.Password); err != nil {
		return nil, err
	}
	return &User{
		id:        props.ID,
		name:      props.Name,
		email:     props.Email,
		password:  props.Password,
		createdAt: props.CreatedAt,
		updatedAt: props.UpdatedAt,
	}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("Name cannot be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < minNameLength {
		return apperr.Validation("Name must have at least 3 characters")
	}
	if n > maxNameLength {
		return apperr.Validation("Name must not exceed 100 characters")
	}
	return nil
}

func validatePassword(p *valueobject.Password) error {
	if p == nil || p.Value() == "" {
		return apperr.Validation("Password must have at least 6 characters")
	}
	return nil
}

// ID returns the user id as a string.
func (u *User) ID() string {
	return u.id.Value()
}

func (u *User) UserID() valueobject.UserID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() valueobject.Email {
	return u.email
}

// Password returns the stored hash wrapper.
func (u *User) Password() *valueobject.Password {
	return u.password
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// UpdateName replaces the name. An invalid name leaves the user untouched.
func (u *User) UpdateName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.name = name
	u.touch()
	return nil
}

// UpdateEmail replaces the email address.
func (u *User) UpdateEmail(email valueobject.Email) {
	u.email = email
	u.touch()
}

// UpdatePassword replaces the password hash.
func (u *User) UpdatePassword(p *valueobject.Password) error {
	if err := validatePassword(p); err != nil {
		return err
	}
	u.password = p
	u.touch()
	return nil
}

// Equals compares identity only.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.id.Equals(other.id)
}

// ToObject returns the sanitized projection.
func (u *User) ToObject() UserSnapshot {
	return UserSnapshot{
		ID:        u.id.Value(),
		Name:      u.name,
		Email:     u.email.Value(),
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

func (u *User) touch() {
	u.updatedAt = now()
}
