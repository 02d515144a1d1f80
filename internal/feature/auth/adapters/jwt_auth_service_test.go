package adapters

import (
	"context"
	"errors"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	useradapters "account_backend/internal/feature/user/adapters"
	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
	jwtmw "account_backend/internal/platform/jwt"
)

var tokenShape = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// setupService prepares an in-memory user store holding one known user.
func setupService(t *testing.T) (*jwtAuthService, *entity.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&useradapters.UserModel{}))

	users := useradapters.NewUserRepository(db)
	email, err := valueobject.NewEmail("john@example.com")
	require.NoError(t, err)
	password, err := valueobject.NewPassword("password123")
	require.NoError(t, err)
	u, err := entity.NewUser(entity.UserProps{Name: "John Doe", Email: email, Password: password})
	require.NoError(t, err)
	_, err = users.Save(context.Background(), u)
	require.NoError(t, err)

	return NewJWTAuthService(users, jwtmw.NewGenerator("test-secret"), 0, 0), u
}

func TestJWTAuthService_ValidateUser(t *testing.T) {
	svc, u := setupService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
	}{
		{"match", "john@example.com", "password123", u.ID()},
		{"email is normalized", "  JOHN@Example.com ", "password123", u.ID()},
		{"wrong password", "john@example.com", "password124", ""},
		{"password is case sensitive", "john@example.com", "PASSWORD123", ""},
		{"unknown email", "jane@example.com", "password123", ""},
		{"malformed email", "nope", "password123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ValidateUser(context.Background(), tt.email, tt.password)

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestJWTAuthService_ValidateUser_AlwaysComparesHash(t *testing.T) {
	svc, u := setupService(t)

	var compared []*valueobject.Password
	svc.compare = func(p *valueobject.Password, plain string) bool {
		compared = append(compared, p)
		return p.Compare(plain)
	}

	tests := []struct {
		name      string
		email     string
		wantDummy bool
	}{
		{"known email", "john@example.com", false},
		{"unknown email", "jane@example.com", true},
		{"malformed email", "nope", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compared = nil

			id, err := svc.ValidateUser(context.Background(), tt.email, "wrong-password")

			require.NoError(t, err)
			assert.Empty(t, id)
			require.Len(t, compared, 1, "exactly one bcrypt compare per attempt")
			if tt.wantDummy {
				assert.Same(t, dummyPassword(), compared[0])
			} else {
				assert.True(t, compared[0].Equals(u.Password()))
			}
		})
	}
}

func TestDummyPassword_IsRealBcryptHash(t *testing.T) {
	p := dummyPassword()

	assert.Regexp(t, `^\$2a\$10\$`, p.Value())
	assert.False(t, p.Compare("password123"))
}

func TestJWTAuthService_GenerateTokens(t *testing.T) {
	svc, u := setupService(t)

	tokens, err := svc.GenerateTokens(context.Background(), u.ID())

	require.NoError(t, err)
	assert.Regexp(t, tokenShape, tokens.AccessToken)
	assert.Regexp(t, tokenShape, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)

	sub, ok := svc.ValidateToken(context.Background(), tokens.AccessToken)
	assert.True(t, ok)
	assert.Equal(t, u.ID(), sub)
}

type failingSigner struct {
	calls atomic.Int32
}

func (s *failingSigner) GenerateToken(string, time.Duration) (string, error) {
	s.calls.Add(1)
	return "", errors.New("signing key unavailable")
}

func (s *failingSigner) ParseToken(string) (string, error) {
	return "", errors.New("unused")
}

func TestJWTAuthService_GenerateTokens_SignError(t *testing.T) {
	signer := &failingSigner{}
	svc := NewJWTAuthService(nil, signer, time.Hour, 24*time.Hour)

	tokens, err := svc.GenerateTokens(context.Background(), "user-1")

	assert.Nil(t, tokens)
	assert.ErrorContains(t, err, "signing key unavailable")
	assert.Equal(t, int32(2), signer.calls.Load())
}

func TestJWTAuthService_ValidateToken(t *testing.T) {
	svc, _ := setupService(t)
	forged, err := jwtmw.NewGenerator("other-secret").GenerateToken("user-1", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "a.b.c", forged} {
		sub, ok := svc.ValidateToken(context.Background(), tok)
		assert.False(t, ok, tok)
		assert.Empty(t, sub)
	}
}

func TestJWTAuthService_RefreshAccessToken(t *testing.T) {
	svc, u := setupService(t)
	tokens, err := svc.GenerateTokens(context.Background(), u.ID())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		refreshed, err := svc.RefreshAccessToken(context.Background(), tokens.RefreshToken)

		require.NoError(t, err)
		assert.Equal(t, int64(3600), refreshed.ExpiresIn)
		sub, ok := svc.ValidateToken(context.Background(), refreshed.AccessToken)
		assert.True(t, ok)
		assert.Equal(t, u.ID(), sub)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		expired, err := jwtmw.NewGenerator("test-secret").GenerateToken(u.ID(), -time.Minute)
		require.NoError(t, err)

		_, err = svc.RefreshAccessToken(context.Background(), expired)

		assert.Error(t, err)
	})

	t.Run("forged refresh token", func(t *testing.T) {
		forged, err := jwtmw.NewGenerator("other-secret").GenerateToken(u.ID(), time.Hour)
		require.NoError(t, err)

		_, err = svc.RefreshAccessToken(context.Background(), forged)

		assert.Error(t, err)
	})
}

func TestNewJWTAuthService_Defaults(t *testing.T) {
	svc := NewJWTAuthService(nil, nil, 0, -1)

	assert.Equal(t, DefaultAccessTTL, svc.accessTTL)
	assert.Equal(t, DefaultRefreshTTL, svc.refreshTTL)
}
