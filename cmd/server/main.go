package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"account_backend/internal/app/config"
	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	"account_backend/internal/platform/logger"
	"account_backend/internal/platform/metrics"
	"account_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := di.NewDatabase(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("database handle unavailable")
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	// Redis (optional)
	rdb := di.NewRedis(ctx, cfg, log)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.WithError(err).Error("failed to close Redis client")
			}
		}()
	}

	users := di.NewUserRepository(gdb, rdb, cfg.UserCacheTTL)
	h := di.NewHandlers(cfg, users, log)

	engine := router.NewRouter(router.Deps{
		Log:            log,
		Auth:           h.Auth,
		Users:          h.Users,
		Tokens:         h.Tokens,
		Health:         sqlDB,
		Metrics:        metrics.New(),
		AuthLimiter:    ratelimiter.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
		CORSOrigins:    cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
