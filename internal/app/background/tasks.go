package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthReporter interface {
	SetServing(serving bool)
}

type BackgroundTasks struct {
	Stats   domain.RosterStatsReader
	Metrics *metrics.TeamMetrics
	DB      Pinger
	Health  HealthReporter

	RosterInterval time.Duration
	HealthInterval time.Duration
}

func NewBackgroundTasks(stats domain.RosterStatsReader, teamMetrics *metrics.TeamMetrics, db Pinger, health HealthReporter) *BackgroundTasks {
	return &BackgroundTasks{
		Stats:          stats,
		Metrics:        teamMetrics,
		DB:             db,
		Health:         health,
		RosterInterval: 30 * time.Second,
		HealthInterval: 5 * time.Second,
	}
}

// StartAll runs every task until ctx is cancelled.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRosterGauges(ctx)
	go bt.startHealthProbe(ctx)
}

func (bt *BackgroundTasks) startRosterGauges(ctx context.Context) {
	ticker := time.NewTicker(bt.RosterInterval)
	defer ticker.Stop()

	for {
		bt.refreshRoster(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (bt *BackgroundTasks) refreshRoster(ctx context.Context) {
	stats, err := bt.Stats.RosterStats(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("roster stats refresh failed", "error", err.Error())
		}
		return
	}
	bt.Metrics.RecordRoster(stats.Teams, stats.Players, stats.FreeAgents)
}

func (bt *BackgroundTasks) startHealthProbe(ctx context.Context) {
	ticker := time.NewTicker(bt.HealthInterval)
	defer ticker.Stop()

	for {
		bt.probe(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (bt *BackgroundTasks) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := bt.DB.PingContext(pingCtx)
	if err != nil && ctx.Err() == nil {
		slog.Warn("database ping failed", "error", err.Error())
	}
	bt.Health.SetServing(err == nil)
}
