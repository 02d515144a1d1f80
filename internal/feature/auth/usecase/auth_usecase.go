// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/domain/valueobject"
	userusecase "account_backend/internal/feature/user/usecase"
	"account_backend/internal/shared/apperr"
)

// RegisterRequest is the input of Register.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest is the input of Login.
type LoginRequest struct {
	Email    string
	Password string
}

// authUsecase implements registration, login and token refresh.
type authUsecase struct {
	users userusecase.UserRepository
	auth  AuthService
	log   logrus.FieldLogger
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users userusecase.UserRepository, auth AuthService, log logrus.FieldLogger) *authUsecase {
	return &authUsecase{
		users: users,
		auth:  auth,
		log:   log,
	}
}

// Register creates the account and issues its first token pair.
// Nothing after a failed step runs: a duplicate email never reaches Save or GenerateTokens.
func (u *authUsecase) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	user, err := userusecase.RegisterNewUser(ctx, u.users, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return u.issue(ctx, user.ID())
}

// Login checks the credentials and issues a token pair.
// Only an explicit "no match" becomes ErrInvalidCredentials; other errors propagate unchanged.
func (u *authUsecase) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	userID, err := u.auth.ValidateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrInvalidCredentials
	}
	return u.issue(ctx, userID)
}

// RefreshToken mints a new access token.
// Every failure is reported as ErrInvalidRefreshToken; the cause is kept for logging only.
func (u *authUsecase) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	refreshed, err := u.auth.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		u.log.WithError(err).Debug("refresh token rejected")
		return nil, apperr.Unauthorized(ErrInvalidRefreshToken.Message, err)
	}
	return &RefreshResponse{
		AccessToken: refreshed.AccessToken,
		ExpiresIn:   refreshed.ExpiresIn,
		TokenType:   TokenTypeBearer,
	}, nil
}

// ValidateToken resolves a bearer token for the authentication middleware.
func (u *authUsecase) ValidateToken(ctx context.Context, token string) (string, bool) {
	return u.auth.ValidateToken(ctx, token)
}

func (u *authUsecase) issue(ctx context.Context, userID string) (*AuthResponse, error) {
	tokens, err := u.auth.GenerateTokens(ctx, userID)
	if err != nil {
		return nil, err
	}
	access, err := valueobject.NewAccessToken(tokens.AccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := valueobject.NewRefreshToken(tokens.RefreshToken)
	if err != nil {
		return nil, err
	}
	return newAuthResponse(entity.NewAuthToken(access, refresh, tokens.ExpiresIn)), nil
}
