package repository

import (
	"context"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStatsRepository struct {
	DB *gorm.DB
}

func NewDefaultStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{DB: db}
}

func (r *DefaultStatsRepository) RosterStats(ctx context.Context) (domain.RosterStats, error) {
	var stats domain.RosterStats
	db := r.DB.WithContext(ctx)

	if err := db.Model(&models.TeamModel{}).Count(&stats.Teams).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.PlayerModel{}).Count(&stats.Players).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.PlayerModel{}).Where("team_id IS NULL").Count(&stats.FreeAgents).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
