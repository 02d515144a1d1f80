// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"account_backend/internal/app/config"
	useradapters "account_backend/internal/feature/user/adapters"
	userusecase "account_backend/internal/feature/user/usecase"
	"account_backend/internal/platform/cache"
	"account_backend/internal/platform/db"
	"account_backend/internal/platform/redis"
)

const redisConnectTimeout = 5 * time.Second

// NewDatabase opens the configured database and migrates it when RUN_MIGRATIONS is set.
func NewDatabase(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	gdb, err := db.Open(cfg.DB(), log)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		log.Info("database migrated")
	}
	return gdb, nil
}

// NewRedis returns a connected client, or nil when Redis is not configured or unreachable.
// The service runs without the user cache in that case.
func NewRedis(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) *goredis.Client {
	if !cfg.RedisEnabled() {
		log.Info("REDIS_HOST not set. Running without cache.")
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	rdb, err := redis.NewRedisClient(ctx, cfg.Redis(), log)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable. Running without cache.")
		return nil
	}
	return rdb
}

// NewUserRepository returns the GORM repository, wrapped in the Redis cache when rdb is set.
func NewUserRepository(gdb *gorm.DB, rdb *goredis.Client, ttl time.Duration) userusecase.UserRepository {
	repo := useradapters.NewUserRepository(gdb)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
	}
	return repo
}
