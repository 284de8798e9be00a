package mappers

import (
	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/postgres/models"
)

func ToGORMTeam(team *domain.Team) *models.TeamModel {
	playerModels := make([]models.PlayerModel, len(team.Players))
	for i, player := range team.Players {
		playerModels[i] = *ToGORMPlayer(player)
	}
	return &models.TeamModel{
		ID:      team.ID,
		Name:    team.Name,
		Acronym: team.Acronym,
		Budget:  team.Budget,
		Players: playerModels,
	}
}

// ToDomainTeam rebuilds the aggregate, attaching each player through AddPlayer so back-references are set.
func ToDomainTeam(model *models.TeamModel) *domain.Team {
	team := domain.NewTeam(model.Name, model.Acronym, model.Budget)
	team.ID = model.ID
	for i := range model.Players {
		team.AddPlayer(ToDomainPlayer(&model.Players[i]))
	}
	return team
}

func ToGORMPlayer(player *domain.Player) *models.PlayerModel {
	return &models.PlayerModel{
		ID:       player.ID,
		Name:     player.Name,
		Position: player.Position,
		TeamID:   player.TeamID(),
	}
}

func ToDomainPlayer(model *models.PlayerModel) *domain.Player {
	return &domain.Player{
		ID:       model.ID,
		Name:     model.Name,
		Position: model.Position,
	}
}

// ApplyGeneratedIDs copies store-assigned ids from a freshly inserted model back onto the aggregate.
func ApplyGeneratedIDs(team *domain.Team, model *models.TeamModel) {
	team.ID = model.ID
	for i := range model.Players {
		if i < len(team.Players) {
			team.Players[i].ID = model.Players[i].ID
		}
	}
}
