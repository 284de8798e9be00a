package router

import (
	"log/slog"
	"net/http"

	"github.com/LavaJover/football-team-service/internal/delivery/http/handlers"
	"github.com/LavaJover/football-team-service/internal/delivery/http/middleware"
	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Config struct {
	Logger  *slog.Logger
	Metrics *metrics.TeamMetrics
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
}

func New(cfg Config, teamHandler *handlers.TeamHandler, healthHandler *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger, cfg.Metrics))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", healthHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/equipes", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Post("/", teamHandler.CreateTeam)
		r.Post("/transfer", teamHandler.TransferPlayer)
		r.Get("/{acronym}", teamHandler.GetTeamByAcronym)
	})

	return r
}
