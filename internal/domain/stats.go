package domain

import "context"

// RosterStats is a point-in-time count of stored teams and players.
type RosterStats struct {
	Teams      int64
	Players    int64
	FreeAgents int64
}

type RosterStatsReader interface {
	RosterStats(ctx context.Context) (RosterStats, error)
}
