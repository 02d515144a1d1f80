// Package config loads the service configuration from .env and the process environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"account_backend/internal/platform/db"
	"account_backend/internal/platform/redis"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV"   default:"development"`
	Port     string `envconfig:"PORT"      default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode  string `envconfig:"GIN_MODE"  default:"release"`

	DBDriver         string        `envconfig:"DB_DRIVER"          default:"postgres"`
	DBHost           string        `envconfig:"DB_HOST"            default:"localhost"`
	DBPort           string        `envconfig:"DB_PORT"            default:"5432"`
	DBUser           string        `envconfig:"DB_USER"            default:"postgres"`
	DBPassword       string        `envconfig:"DB_PASSWORD"`
	DBName           string        `envconfig:"DB_NAME"            default:"accounts"`
	DBSSLMode        string        `envconfig:"DB_SSLMODE"         default:"disable"`
	DBSQLitePath     string        `envconfig:"DB_SQLITE_PATH"     default:"accounts.db"`
	DBConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"60s"`
	RunMigrations    bool          `envconfig:"RUN_MIGRATIONS"     default:"true"`

	// An empty REDIS_HOST runs the service without the user cache.
	RedisHost     string        `envconfig:"REDIS_HOST"`
	RedisPort     string        `envconfig:"REDIS_PORT"     default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	UserCacheTTL  time.Duration `envconfig:"USER_CACHE_TTL" default:"5m"`

	JWTSecret     string        `envconfig:"JWT_SECRET"`
	JWTAccessTTL  time.Duration `envconfig:"JWT_ACCESS_TTL"  default:"1h"`
	JWTRefreshTTL time.Duration `envconfig:"JWT_REFRESH_TTL" default:"168h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// IPs or CIDRs allowed to set X-Forwarded-For. Empty trusts no proxy.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	AuthRateLimit  int           `envconfig:"AUTH_RATE_LIMIT"  default:"10"`
	AuthRateWindow time.Duration `envconfig:"AUTH_RATE_WINDOW" default:"1m"`
}

// Load reads the given .env files (default ".env") and then the environment.
// Missing files are skipped. Variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	switch c.DBDriver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTAccessTTL <= 0 || c.JWTRefreshTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive")
	}
	for _, p := range c.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
			}
		}
	}
	return nil
}

// DB returns the database settings.
func (c *Config) DB() db.Config {
	return db.Config{
		Driver:         c.DBDriver,
		Host:           c.DBHost,
		Port:           c.DBPort,
		User:           c.DBUser,
		Password:       c.DBPassword,
		Name:           c.DBName,
		SSLMode:        c.DBSSLMode,
		SQLitePath:     c.DBSQLitePath,
		ConnectTimeout: c.DBConnectTimeout,
	}
}

// Redis returns the cache settings.
func (c *Config) Redis() redis.Config {
	return redis.Config{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	}
}

// RedisEnabled reports whether a cache server is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
