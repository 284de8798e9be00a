package teamdto

import "github.com/shopspring/decimal"

type CreateTeamRequest struct {
	Name    string                `json:"name" validate:"notblank"`
	Acronym string                `json:"acronym" validate:"notblank"`
	Budget  *decimal.Decimal      `json:"budget" validate:"required,gt=0"`
	Joueurs []CreatePlayerRequest `json:"joueurs" validate:"omitempty,dive"`
}

type CreatePlayerRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Position string `json:"position" validate:"notblank"`
}

type TransferRequest struct {
	JoueurID         *int64 `json:"joueurId" validate:"required"`
	NouvelleEquipeID *int64 `json:"nouvelleEquipeId" validate:"required"`
}
