package domain

import "context"

type TeamRepository interface {
	ExistsByAcronym(ctx context.Context, acronym string) (bool, error)
	FindByAcronym(ctx context.Context, acronym string) (*Team, bool, error)
	FindByID(ctx context.Context, teamID int64) (*Team, bool, error)
	FindAll(ctx context.Context, req PageRequest) (*Page[*Team], error)
	Save(ctx context.Context, team *Team) error
}

type PlayerRepository interface {
	FindByID(ctx context.Context, playerID int64) (*Player, bool, error)
	Save(ctx context.Context, player *Player) error
}

// Store hands out repositories bound to one unit of work.
type Store interface {
	Teams() TeamRepository
	Players() PlayerRepository
}

// Transactor runs fn inside a single transaction. Returning an error from fn rolls it back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(store Store) error) error
}
