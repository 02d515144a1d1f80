// Package db opens the GORM connection and runs schema migrations.
package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	useradapters "account_backend/internal/feature/user/adapters"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultConnectTimeout = 60 * time.Second
	retryInterval         = 3 * time.Second
	slowQueryThreshold    = 200 * time.Millisecond
)

// Config holds the connection settings for either driver.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	// ConnectTimeout bounds the retry loop. Zero means 60s.
	ConnectTimeout time.Duration
}

// Opener opens a connection for a DSN. Tests replace it to simulate failures.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the postgres DSN, or the file path for sqlite.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// gormWriter sends gorm's log lines through logrus.
type gormWriter struct {
	log logrus.FieldLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}

// newGormLogger logs errors and slow queries. Record-not-found is expected and never logged.
func newGormLogger(log logrus.FieldLogger) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: log.WithField("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// NewOpener returns the Opener for the configured driver.
func NewOpener(driver string, log logrus.FieldLogger) (Opener, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	}
	switch driver {
	case DriverPostgres, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects with retry. An in-memory sqlite database is pinned to one connection.
func Open(cfg Config, log logrus.FieldLogger) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver, log)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	db, err := connectWithRetry(BuildDSN(cfg), timeout, retryInterval, opener, log)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite && cfg.SQLitePath == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// ConnectWithRetry retries opener every 3s until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener, log logrus.FieldLogger) (*gorm.DB, error) {
	return connectWithRetry(dsn, timeout, retryInterval, opener, log)
}

func connectWithRetry(dsn string, timeout, interval time.Duration, opener Opener, log logrus.FieldLogger) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.WithError(err).Warn("DB connect failed, retrying")
		time.Sleep(interval)
	}
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&useradapters.UserModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
