// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/feature/user/domain/valueobject"
	"account_backend/internal/feature/user/usecase"
)

// CachingUserRepository decorates a UserRepository with a Redis read-through cache on FindByID.
// Writes go to the inner repository first; Update and Delete then drop the cached entry.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// userRecord is the cached form of a user. It carries the hash so the entity can be rebuilt.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingUserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	return c.inner.Save(ctx, u)
}

// FindByID checks the cache first, then falls back to the inner repository.
// Absent users are not cached.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if u, err := decode(b); err == nil {
			return u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := c.inner.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}

	// 3) Store in cache (best effort)
	if b, err := encode(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return u, nil
}

func (c *CachingUserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

func (c *CachingUserRepository) FindAll(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	return c.inner.FindAll(ctx, page, limit)
}

func (c *CachingUserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	out, err := c.inner.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, u.ID())
	return out, nil
}

func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachingUserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	return c.inner.ExistsByEmail(ctx, email)
}

// invalidate is best effort: a failed DEL leaves the entry to expire by TTL.
func (c *CachingUserRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

func (c *CachingUserRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(id))
}

func encode(u *entity.User) ([]byte, error) {
	return json.Marshal(userRecord{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.Password().Value(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	})
}

func decode(b []byte) (*entity.User, error) {
	var r userRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	id, err := valueobject.NewUserID(r.ID)
	if err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.PasswordFromHash(r.PasswordHash)
	if err != nil {
		return nil, err
	}
	return entity.ReconstituteUser(entity.UserProps{
		ID:        id,
		Name:      r.Name,
		Email:     email,
		Password:  password,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
