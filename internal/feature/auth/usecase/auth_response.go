package usecase

import "account_backend/internal/feature/auth/domain/entity"

// TokenTypeBearer is the token type reported in every token response.
const TokenTypeBearer = "Bearer"

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// RefreshResponse is returned by RefreshToken. No new refresh token is issued.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	TokenType   string `json:"tokenType"`
}

func newAuthResponse(t *entity.AuthToken) *AuthResponse {
	snap := t.ToObject()
	return &AuthResponse{
		AccessToken:  snap.AccessToken,
		RefreshToken: snap.RefreshToken,
		ExpiresIn:    snap.ExpiresIn,
		TokenType:    TokenTypeBearer,
	}
}
