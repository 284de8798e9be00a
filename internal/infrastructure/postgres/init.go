package postgres

import (
	"log"
	"log/slog"
	"time"

	"github.com/LavaJover/football-team-service/internal/config"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.TeamConfig) *gorm.DB {
	logLevel := logger.Warn
	if cfg.Env == config.EnvLocal {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.TeamDB.Dsn), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if cfg.TeamDB.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			log.Fatalf("failed to auto-migrate: %v\n", err)
		}
		slog.Info("schema auto-migrated")
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.TeamModel{}, &models.PlayerModel{})
}
