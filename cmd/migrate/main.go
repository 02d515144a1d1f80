package main

import (
	"github.com/sirupsen/logrus"

	"account_backend/internal/app/config"
	"account_backend/internal/platform/db"
	"account_backend/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	gdb, err := db.Open(cfg.DB(), log)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("database handle unavailable")
	}
	defer sqlDB.Close()

	if err := db.Migrate(gdb); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.Info("migration ok")
}
