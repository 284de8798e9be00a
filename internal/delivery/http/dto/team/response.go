package teamdto

import (
	"encoding/json"

	"github.com/LavaJover/football-team-service/internal/domain"
)

type TeamResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Acronym string           `json:"acronym"`
	Budget  json.Number      `json:"budget"`
	Joueurs []PlayerResponse `json:"joueurs"`
}

type PlayerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

type TransferResponse struct {
	Message        string `json:"message"`
	JoueurName     string `json:"joueurName"`
	Position       string `json:"position"`
	AncienneEquipe string `json:"ancienneEquipe"`
	NouvelleEquipe string `json:"nouvelleEquipe"`
	Confirmed      bool   `json:"confirmed"`
}

func ToTeamResponse(team *domain.Team) TeamResponse {
	joueurs := make([]PlayerResponse, len(team.Players))
	for i, player := range team.Players {
		joueurs[i] = PlayerResponse{
			ID:       player.ID,
			Name:     player.Name,
			Position: player.Position,
		}
	}
	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Acronym: team.Acronym,
		Budget:  json.Number(team.Budget.String()),
		Joueurs: joueurs,
	}
}

func ToTeamPageResponse(page *domain.Page[*domain.Team]) PageResponse[TeamResponse] {
	content := make([]TeamResponse, len(page.Content))
	for i, team := range page.Content {
		content[i] = ToTeamResponse(team)
	}
	return PageResponse[TeamResponse]{
		Content:          content,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		Number:           page.Number,
		Size:             page.Size,
		NumberOfElements: len(content),
		First:            page.First(),
		Last:             page.Last(),
		Empty:            len(content) == 0,
	}
}

func ToTransferResponse(confirmation *domain.TransferConfirmation) TransferResponse {
	return TransferResponse{
		Message:        confirmation.Message,
		JoueurName:     confirmation.PlayerName,
		Position:       confirmation.Position,
		AncienneEquipe: confirmation.OriginTeam,
		NouvelleEquipe: confirmation.DestinationTeam,
		Confirmed:      confirmation.Confirmed,
	}
}
