package usecase

import "context"

// TokenSet is the result of issuing a fresh access/refresh pair.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}

// RefreshedToken is a new access token minted from a refresh token.
type RefreshedToken struct {
	AccessToken string
	ExpiresIn   int64
}

// AuthService abstracts credential checks and token issuance.
// Following Go convention, the interface is declared by its consumer (usecase), not by adapters.
type AuthService interface {
	// ValidateUser returns the id of the user matching the credentials, or "" when the
	// email is unknown or the password is wrong. Errors are infrastructure failures only.
	ValidateUser(ctx context.Context, email, password string) (string, error)

	// GenerateTokens issues an access token and a refresh token for userID.
	GenerateTokens(ctx context.Context, userID string) (*TokenSet, error)

	// ValidateToken returns the subject of a valid token, or false on any verification failure.
	ValidateToken(ctx context.Context, token string) (string, bool)

	// RefreshAccessToken verifies the refresh token and mints a new access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshedToken, error)
}
