package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
)

const testUserID = "7f1c7a34-1b6a-4f63-9a4c-2f0b1b3e9d10"

// mockUserRepository is a function-field UserRepository for decorator tests.
type mockUserRepository struct {
	findByIDFn func(ctx context.Context, id string) (*entity.User, error)
	updateFn   func(ctx context.Context, u *entity.User) (*entity.User, error)
	deleteFn   func(ctx context.Context, id string) error

	findByIDCalls int
}

func (m *mockUserRepository) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	m.findByIDCalls++
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(context.Context, valueobject.Email) (*entity.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindAll(context.Context, int, int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ExistsByEmail(context.Context, valueobject.Email) (bool, error) {
	return false, nil
}

func newCachedTestUser(t *testing.T) *entity.User {
	t.Helper()
	id, err := valueobject.NewUserID(testUserID)
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	email, err := valueobject.NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	pw, err := valueobject.PasswordFromHash("$2a$10$abcdefghijklmnopqrstuuQ0P0dlyN5Jz5d5m7qJ0i6mV8O7xGq1e")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u, err := entity.ReconstituteUser(entity.UserProps{
		ID:        id,
		Name:      "alice",
		Email:     email,
		Password:  pw,
		CreatedAt: ts,
		UpdatedAt: ts,
	})
	if err != nil {
		t.Fatalf("reconstitute: %v", err)
	}
	return u
}

func TestNewCachingUserRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "users"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "users"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingUserRepository(nil, tt.ttl, &mockUserRepository{}, tt.namespace)
			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestFindByID_NilRedisBypassesCache(t *testing.T) {
	t.Parallel()

	want := newCachedTestUser(t)
	inner := &mockUserRepository{
		findByIDFn: func(_ context.Context, id string) (*entity.User, error) {
			return want, nil
		},
	}
	repo := NewCachingUserRepository(nil, time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected inner user to be returned")
	}
	if inner.findByIDCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.findByIDCalls)
	}
}

func TestFindByID_CacheHit(t *testing.T) {
	t.Parallel()

	u := newCachedTestUser(t)
	payload, err := encode(u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	rdb, mock := redismock.NewClientMock()
	key := "users:" + testUserID
	mock.ExpectGet(key).SetVal(string(payload))

	inner := &mockUserRepository{}
	repo := NewCachingUserRepository(rdb, time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.findByIDCalls != 0 {
		t.Errorf("inner repository should not be called on a hit, got %d calls", inner.findByIDCalls)
	}
	if got.ID() != u.ID() || got.Name() != u.Name() || !got.Email().Equals(u.Email()) {
		t.Errorf("cached user mismatch: got %+v", got.ToObject())
	}
	if !got.Password().Equals(u.Password()) {
		t.Errorf("password hash was not preserved")
	}
	if !got.CreatedAt().Equal(u.CreatedAt()) || !got.UpdatedAt().Equal(u.UpdatedAt()) {
		t.Errorf("timestamps were not preserved")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestFindByID_CacheMissStoresResult(t *testing.T) {
	t.Parallel()

	u := newCachedTestUser(t)
	payload, err := encode(u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	rdb, mock := redismock.NewClientMock()
	key := "users:" + testUserID
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, 2*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(context.Context, string) (*entity.User, error) { return u, nil },
	}
	repo := NewCachingUserRepository(rdb, 2*time.Minute, inner, "users")

	got, err := repo.FindByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != u {
		t.Errorf("expected inner user to be returned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestFindByID_MissingUserNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	key := "users:" + testUserID
	mock.ExpectGet(key).RedisNil()

	repo := NewCachingUserRepository(rdb, time.Minute, &mockUserRepository{}, "users")

	got, err := repo.FindByID(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil user, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestFindByID_InnerErrorPropagates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	key := "users:" + testUserID
	mock.ExpectGet(key).RedisNil()

	dbErr := errors.New("db down")
	inner := &mockUserRepository{
		findByIDFn: func(context.Context, string) (*entity.User, error) { return nil, dbErr },
	}
	repo := NewCachingUserRepository(rdb, time.Minute, inner, "users")

	_, err := repo.FindByID(context.Background(), testUserID)
	if !errors.Is(err, dbErr) {
		t.Errorf("expected %v, got %v", dbErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestFindByID_CorruptedEntryIsDeleted(t *testing.T) {
	t.Parallel()

	u := newCachedTestUser(t)
	payload, err := encode(u)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	rdb, mock := redismock.NewClientMock()
	key := "users:" + testUserID
	mock.ExpectGet(key).SetVal("{not json")
	mock.ExpectDel(key).SetVal(1)
	mock.ExpectSet(key, payload, time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(context.Context, string) (*entity.User, error) { return u, nil },
	}
	repo := NewCachingUserRepository(rdb, time.Minute, inner, "users")

	if _, err := repo.FindByID(context.Background(), testUserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.findByIDCalls != 1 {
		t.Errorf("expected fallback to inner repository, got %d calls", inner.findByIDCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestUpdate_InvalidatesEntry(t *testing.T) {
	t.Parallel()

	u := newCachedTestUser(t)
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("users:" + testUserID).SetVal(1)

	repo := NewCachingUserRepository(rdb, time.Minute, &mockUserRepository{}, "users")

	if _, err := repo.Update(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestUpdate_FailureKeepsEntry(t *testing.T) {
	t.Parallel()

	u := newCachedTestUser(t)
	rdb, mock := redismock.NewClientMock()

	dbErr := errors.New("write failed")
	inner := &mockUserRepository{
		updateFn: func(context.Context, *entity.User) (*entity.User, error) { return nil, dbErr },
	}
	repo := NewCachingUserRepository(rdb, time.Minute, inner, "users")

	if _, err := repo.Update(context.Background(), u); !errors.Is(err, dbErr) {
		t.Fatalf("expected %v, got %v", dbErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis calls: %v", err)
	}
}

func TestDelete_InvalidatesEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("accounts:" + testUserID).SetVal(1)

	repo := NewCachingUserRepository(rdb, time.Minute, &mockUserRepository{}, "accounts")

	if err := repo.Delete(context.Background(), testUserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no special characters", "abc-123", "abc-123"},
		{"spaces replaced", "a b c", "a_b_c"},
		{"colons replaced", "a:b:c", "a_b_c"},
		{"mixed", "a b:c", "a_b_c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := safe(tt.input); got != tt.expected {
				t.Errorf("safe(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
