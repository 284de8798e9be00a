package domain

import "fmt"

// FreeAgent stands in for the origin team of a player without one.
const FreeAgent = "Free Agent"

const transferMessageFormat = "🚨 HERE WE GO! %s (%s) has officially joined %s from %s! " +
	"Deal confirmed and sealed. ✅🔴🔵 #TransferNews #HereWeGo"

type TransferConfirmation struct {
	Message         string
	PlayerName      string
	Position        string
	OriginTeam      string
	DestinationTeam string
	Confirmed       bool
}

func NewTransferConfirmation(playerName, position, originTeam, destinationTeam string) TransferConfirmation {
	return TransferConfirmation{
		Message:         fmt.Sprintf(transferMessageFormat, playerName, position, destinationTeam, originTeam),
		PlayerName:      playerName,
		Position:        position,
		OriginTeam:      originTeam,
		DestinationTeam: destinationTeam,
		Confirmed:       true,
	}
}

// TransferEvent is published once a transfer has been committed.
type TransferEvent struct {
	EventID           string `json:"event_id"`
	PlayerID          int64  `json:"player_id"`
	PlayerName        string `json:"player_name"`
	Position          string `json:"position"`
	OriginTeam        string `json:"origin_team"`
	DestinationTeamID int64  `json:"destination_team_id"`
	DestinationTeam   string `json:"destination_team"`
	Message           string `json:"message"`
	OccurredAt        string `json:"occurred_at"`
}
