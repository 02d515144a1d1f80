// Package adapters provides the JWT-backed AuthService.
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/feature/user/domain/valueobject"
	userusecase "account_backend/internal/feature/user/usecase"
)

const (
	// DefaultAccessTTL is the access token lifetime.
	DefaultAccessTTL = time.Hour
	// DefaultRefreshTTL is the refresh token lifetime.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenSigner signs and verifies subject-only tokens.
type TokenSigner interface {
	GenerateToken(subject string, ttl time.Duration) (string, error)
	ParseToken(token string) (string, error)
}

// dummyPassword is compared against when no user matches, so every login costs one bcrypt compare.
var dummyPassword = sync.OnceValue(func() *valueobject.Password {
	p, err := valueobject.NewPassword("dummy-password-for-timing")
	if err != nil {
		panic(fmt.Sprintf("dummy password: %v", err))
	}
	return p
})

type jwtAuthService struct {
	users      userusecase.UserRepository
	signer     TokenSigner
	accessTTL  time.Duration
	refreshTTL time.Duration
	compare    func(p *valueobject.Password, plain string) bool
}

var _ usecase.AuthService = (*jwtAuthService)(nil)

// NewJWTAuthService returns an AuthService backed by signer and users.
// Non-positive lifetimes fall back to the defaults.
func NewJWTAuthService(users userusecase.UserRepository, signer TokenSigner, accessTTL, refreshTTL time.Duration) *jwtAuthService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &jwtAuthService{
		users:      users,
		signer:     signer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		compare:    (*valueobject.Password).Compare,
	}
}

// ValidateUser returns "" for a malformed or unknown email and for a wrong password.
// All three paths run one bcrypt compare.
func (s *jwtAuthService) ValidateUser(ctx context.Context, email, password string) (string, error) {
	e, err := valueobject.NewEmail(email)
	if err != nil {
		s.compare(dummyPassword(), password)
		return "", nil
	}
	user, err := s.users.FindByEmail(ctx, e)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.compare(dummyPassword(), password)
		return "", nil
	}
	if !s.compare(user.Password(), password) {
		return "", nil
	}
	return user.ID(), nil
}

// GenerateTokens signs both tokens concurrently.
func (s *jwtAuthService) GenerateTokens(_ context.Context, userID string) (*usecase.TokenSet, error) {
	var (
		access, refresh string
		g               errgroup.Group
	)
	g.Go(func() error {
		var err error
		access, err = s.signer.GenerateToken(userID, s.accessTTL)
		return err
	})
	g.Go(func() error {
		var err error
		refresh, err = s.signer.GenerateToken(userID, s.refreshTTL)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}
	return &usecase.TokenSet{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *jwtAuthService) ValidateToken(_ context.Context, token string) (string, bool) {
	sub, err := s.signer.ParseToken(token)
	if err != nil {
		return "", false
	}
	return sub, true
}

func (s *jwtAuthService) RefreshAccessToken(_ context.Context, refreshToken string) (*usecase.RefreshedToken, error) {
	sub, err := s.signer.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	access, err := s.signer.GenerateToken(sub, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &usecase.RefreshedToken{
		AccessToken: access,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
