package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TeamMetrics holds the service counters and the HTTP instrumentation.
type TeamMetrics struct {
	// Teams
	TeamsCreatedTotal     prometheus.Counter
	PlayersCreatedTotal   prometheus.Counter
	AcronymConflictsTotal prometheus.Counter

	// Transfers
	TransfersTotal       *prometheus.CounterVec
	TransferEventsFailed prometheus.Counter

	// Roster gauges, refreshed in the background
	TeamsStored      prometheus.Gauge
	PlayersStored    prometheus.Gauge
	FreeAgentsStored prometheus.Gauge

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewTeamMetrics registers every collector on reg.
func NewTeamMetrics(reg prometheus.Registerer) *TeamMetrics {
	factory := promauto.With(reg)
	return &TeamMetrics{
		TeamsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "teams_created_total",
			Help: "Number of teams created",
		}),
		PlayersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "players_created_total",
			Help: "Number of players created together with their team",
		}),
		AcronymConflictsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "team_acronym_conflicts_total",
			Help: "Team creations rejected because the acronym is taken",
		}),
		TransfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "player_transfers_total",
				Help: "Completed player transfers",
			},
			[]string{"origin"},
		),
		TransferEventsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "transfer_events_failed_total",
			Help: "Transfer events that could not be published",
		}),
		TeamsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "teams_stored",
			Help: "Teams currently stored",
		}),
		PlayersStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "players_stored",
			Help: "Players currently stored",
		}),
		FreeAgentsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "free_agents_stored",
			Help: "Stored players without a team",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms, 10ms, 20ms...
			},
			[]string{"route", "method"},
		),
	}
}

func (m *TeamMetrics) RecordTeamCreated(players int) {
	m.TeamsCreatedTotal.Inc()
	m.PlayersCreatedTotal.Add(float64(players))
}

func (m *TeamMetrics) RecordAcronymConflict() {
	m.AcronymConflictsTotal.Inc()
}

// RecordTransfer labels the transfer "free_agent" or "team" by where the player came from.
func (m *TeamMetrics) RecordTransfer(fromFreeAgency bool) {
	origin := "team"
	if fromFreeAgency {
		origin = "free_agent"
	}
	m.TransfersTotal.WithLabelValues(origin).Inc()
}

func (m *TeamMetrics) RecordTransferEventFailed() {
	m.TransferEventsFailed.Inc()
}

func (m *TeamMetrics) RecordRoster(teams, players, freeAgents int64) {
	m.TeamsStored.Set(float64(teams))
	m.PlayersStored.Set(float64(players))
	m.FreeAgentsStored.Set(float64(freeAgents))
}

func (m *TeamMetrics) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
