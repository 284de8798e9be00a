package setup

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/LavaJover/football-team-service/internal/config"
	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/kafka"
	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
	"github.com/LavaJover/football-team-service/internal/infrastructure/migrate"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.TeamConfig
	DB        *gorm.DB
	SQLDB     *sql.DB
	Registry  *prometheus.Registry
	Metrics   *metrics.TeamMetrics
	Publisher *publisher.KafkaTransferPublisher
	Store     *repository.GormStore
	Stats     domain.RosterStatsReader
}

func InitializeDependencies(cfg *config.TeamConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}

	if !cfg.TeamDB.AutoMigrate {
		if err := migrate.RunMigrations(db, cfg.TeamDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, "team"),
	)

	return &Dependencies{
		Config:    cfg,
		DB:        db,
		SQLDB:     sqlDB,
		Registry:  registry,
		Metrics:   metrics.NewTeamMetrics(registry),
		Publisher: initTransferPublisher(cfg),
		Store:     repository.NewGormStore(db),
		Stats:     repository.NewDefaultStatsRepository(db),
	}, nil
}

func initTransferPublisher(cfg *config.TeamConfig) *publisher.KafkaTransferPublisher {
	if !cfg.KafkaService.Enabled {
		slog.Info("kafka disabled, transfer events will not be published")
		return nil
	}
	return publisher.NewKafkaTransferPublisher(cfg.KafkaService.Brokers, cfg.KafkaService.Topic)
}

// Close releases the publisher and the database pool.
func (d *Dependencies) Close() {
	if d.Publisher != nil {
		if err := d.Publisher.Close(); err != nil {
			slog.Error("failed to close kafka publisher", "error", err.Error())
		}
	}
	if err := d.SQLDB.Close(); err != nil {
		slog.Error("failed to close database", "error", err.Error())
	}
}
