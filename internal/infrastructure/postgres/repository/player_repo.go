package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPlayerRepository struct {
	DB *gorm.DB
}

func NewDefaultPlayerRepository(db *gorm.DB) *DefaultPlayerRepository {
	return &DefaultPlayerRepository{DB: db}
}

// FindByID loads the player together with its owning team (and the team's other players),
// so the caller can detach it through the aggregate.
func (r *DefaultPlayerRepository) FindByID(ctx context.Context, playerID int64) (*domain.Player, bool, error) {
	var playerModel models.PlayerModel
	err := r.DB.WithContext(ctx).First(&playerModel, "id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	player := mappers.ToDomainPlayer(&playerModel)
	if playerModel.TeamID == nil {
		return player, true, nil
	}

	team, found, err := NewDefaultTeamRepository(r.DB).FindByID(ctx, *playerModel.TeamID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return player, true, nil
	}
	for _, member := range team.Players {
		if member.ID == player.ID {
			return member, true, nil
		}
	}
	team.AddPlayer(player)
	return player, true, nil
}

func (r *DefaultPlayerRepository) Save(ctx context.Context, player *domain.Player) error {
	return savePlayer(r.DB.WithContext(ctx), player)
}

func savePlayer(db *gorm.DB, player *domain.Player) error {
	if player.ID == 0 {
		playerModel := mappers.ToGORMPlayer(player)
		if err := db.Create(playerModel).Error; err != nil {
			return err
		}
		player.ID = playerModel.ID
		return nil
	}
	result := db.Model(&models.PlayerModel{}).
		Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"name":     player.Name,
			"position": player.Position,
			"team_id":  player.TeamID(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
