package repository

import (
	"context"

	"github.com/LavaJover/football-team-service/internal/domain"
	"gorm.io/gorm"
)

// GormStore binds the repositories to one *gorm.DB, which is a transaction inside WithinTx.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Teams() domain.TeamRepository {
	return NewDefaultTeamRepository(s.db)
}

func (s *GormStore) Players() domain.PlayerRepository {
	return NewDefaultPlayerRepository(s.db)
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(store domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
