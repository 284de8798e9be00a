package teamdto

import "github.com/shopspring/decimal"

type CreateTeamInput struct {
	Name    string
	Acronym string
	Budget  decimal.Decimal
	Players []CreatePlayerInput
}

type CreatePlayerInput struct {
	Name     string
	Position string
}

type TransferPlayerInput struct {
	PlayerID          int64
	DestinationTeamID int64
}
