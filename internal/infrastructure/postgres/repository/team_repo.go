package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTeamRepository struct {
	DB *gorm.DB
}

func NewDefaultTeamRepository(db *gorm.DB) *DefaultTeamRepository {
	return &DefaultTeamRepository{DB: db}
}

func playersByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *DefaultTeamRepository) ExistsByAcronym(ctx context.Context, acronym string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.TeamModel{}).
		Where("acronym = ?", acronym).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultTeamRepository) FindByAcronym(ctx context.Context, acronym string) (*domain.Team, bool, error) {
	return r.findOne(ctx, "acronym = ?", acronym)
}

func (r *DefaultTeamRepository) FindByID(ctx context.Context, teamID int64) (*domain.Team, bool, error) {
	return r.findOne(ctx, "id = ?", teamID)
}

func (r *DefaultTeamRepository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Team, bool, error) {
	var teamModel models.TeamModel
	err := r.DB.WithContext(ctx).
		Preload("Players", playersByID).
		Where(query, args...).
		First(&teamModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return mappers.ToDomainTeam(&teamModel), true, nil
}

func (r *DefaultTeamRepository) FindAll(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Team], error) {
	safeSortBy := "name"
	switch req.Sort.Field {
	case domain.SortByAcronym:
		safeSortBy = "acronym"
	case domain.SortByBudget:
		safeSortBy = "budget"
	}

	safeSortOrder := "ASC"
	if req.Sort.Direction == domain.Desc {
		safeSortOrder = "DESC"
	}

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.TeamModel{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count failed: %w", err)
	}

	var teamModels []models.TeamModel
	if err := r.DB.WithContext(ctx).
		Preload("Players", playersByID).
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Order("id ASC").
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&teamModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find team models: %w", err)
	}

	teams := make([]*domain.Team, len(teamModels))
	for i := range teamModels {
		teams[i] = mappers.ToDomainTeam(&teamModels[i])
	}
	return domain.NewPage(teams, req, total), nil
}

// Save inserts a new team with its players, or updates an existing one and upserts its players.
// Players removed from the collection and not re-attached anywhere are deleted.
func (r *DefaultTeamRepository) Save(ctx context.Context, team *domain.Team) error {
	db := r.DB.WithContext(ctx)

	if team.ID == 0 {
		teamModel := mappers.ToGORMTeam(team)
		if err := db.Create(teamModel).Error; err != nil {
			return translateError(err)
		}
		mappers.ApplyGeneratedIDs(team, teamModel)
	} else {
		result := db.Model(&models.TeamModel{}).
			Where("id = ?", team.ID).
			Updates(map[string]interface{}{
				"name":    team.Name,
				"acronym": team.Acronym,
				"budget":  team.Budget,
			})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.TeamNotFound(team.ID)
		}
		for _, player := range team.Players {
			if err := savePlayer(db, player); err != nil {
				return err
			}
		}
	}

	for _, orphan := range team.Orphans() {
		if err := db.Delete(&models.PlayerModel{}, orphan.ID).Error; err != nil {
			return fmt.Errorf("failed to delete orphan player %d: %w", orphan.ID, err)
		}
	}
	team.ClearRemoved()
	return nil
}
