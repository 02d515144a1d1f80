// Package entity defines the domain entities for the auth feature.
package entity

import "account_backend/internal/feature/auth/domain/valueobject"

// AuthToken groups the tokens issued by a successful login or registration.
type AuthToken struct {
	accessToken  valueobject.AccessToken
	refreshToken valueobject.RefreshToken
	expiresIn    int64
}

// AuthTokenSnapshot is the plain projection of an AuthToken.
type AuthTokenSnapshot struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

func NewAuthToken(access valueobject.AccessToken, refresh valueobject.RefreshToken, expiresIn int64) *AuthToken {
	return &AuthToken{accessToken: access, refreshToken: refresh, expiresIn: expiresIn}
}

func (t *AuthToken) AccessToken() valueobject.AccessToken {
	return t.accessToken
}

func (t *AuthToken) RefreshToken() valueobject.RefreshToken {
	return t.refreshToken
}

// ExpiresIn is the access token lifetime in seconds.
func (t *AuthToken) ExpiresIn() int64 {
	return t.expiresIn
}

func (t *AuthToken) ToObject() AuthTokenSnapshot {
	return AuthTokenSnapshot{
		AccessToken:  t.accessToken.Value(),
		RefreshToken: t.refreshToken.Value(),
		ExpiresIn:    t.expiresIn,
	}
}
