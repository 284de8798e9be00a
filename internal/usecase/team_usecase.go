package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
	teamdto "github.com/LavaJover/football-team-service/internal/usecase/dto/team"
	"github.com/google/uuid"
)

type TeamUsecase interface {
	ListTeams(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Team], error)
	CreateTeam(ctx context.Context, input *teamdto.CreateTeamInput) (*domain.Team, error)
	TransferPlayer(ctx context.Context, input *teamdto.TransferPlayerInput) (*domain.TransferConfirmation, error)
	GetTeamByAcronym(ctx context.Context, acronym string) (*domain.Team, error)
}

type DefaultTeamUsecase struct {
	Tx        domain.Transactor
	Publisher domain.TransferPublisher
	Metrics   *metrics.TeamMetrics

	publishTimeout time.Duration
	inflight       sync.WaitGroup
}

// NewDefaultTeamUsecase accepts a nil publisher, in which case transfer events are not emitted.
func NewDefaultTeamUsecase(
	tx domain.Transactor,
	publisher domain.TransferPublisher,
	teamMetrics *metrics.TeamMetrics) *DefaultTeamUsecase {

	return &DefaultTeamUsecase{
		Tx:             tx,
		Publisher:      publisher,
		Metrics:        teamMetrics,
		publishTimeout: 5 * time.Second,
	}
}

func (uc *DefaultTeamUsecase) ListTeams(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Team], error) {
	if !req.Sort.Field.Valid() {
		req.Sort.Field = domain.SortByName
	}

	var page *domain.Page[*domain.Team]
	err := uc.Tx.WithinTx(ctx, func(store domain.Store) error {
		var err error
		page, err = store.Teams().FindAll(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return page, nil
}

func (uc *DefaultTeamUsecase) CreateTeam(ctx context.Context, input *teamdto.CreateTeamInput) (*domain.Team, error) {
	team := domain.NewTeam(input.Name, input.Acronym, input.Budget)
	for _, playerInput := range input.Players {
		team.AddPlayer(domain.NewPlayer(playerInput.Name, playerInput.Position))
	}

	err := uc.Tx.WithinTx(ctx, func(store domain.Store) error {
		exists, err := store.Teams().ExistsByAcronym(ctx, input.Acronym)
		if err != nil {
			return err
		}
		if exists {
			return domain.TeamAlreadyExists(input.Acronym)
		}
		return store.Teams().Save(ctx, team)
	})
	if err != nil {
		if errors.Is(err, domain.ErrTeamAlreadyExists) {
			uc.Metrics.RecordAcronymConflict()
			return nil, domain.TeamAlreadyExists(input.Acronym)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	uc.Metrics.RecordTeamCreated(len(team.Players))
	slog.Info("team created", "team_id", team.ID, "acronym", team.Acronym, "players", len(team.Players))
	return team, nil
}

func (uc *DefaultTeamUsecase) TransferPlayer(ctx context.Context, input *teamdto.TransferPlayerInput) (*domain.TransferConfirmation, error) {
	var (
		confirmation domain.TransferConfirmation
		event        domain.TransferEvent
		freeAgent    bool
	)

	err := uc.Tx.WithinTx(ctx, func(store domain.Store) error {
		player, found, err := store.Players().FindByID(ctx, input.PlayerID)
		if err != nil {
			return err
		}
		if !found {
			return domain.PlayerNotFound(input.PlayerID)
		}

		destination, found, err := store.Teams().FindByID(ctx, input.DestinationTeamID)
		if err != nil {
			return err
		}
		if !found {
			return domain.TeamNotFound(input.DestinationTeamID)
		}

		origin := player.TeamName()
		freeAgent = player.Team == nil
		if player.Team != nil {
			player.Team.RemovePlayer(player)
		}
		destination.AddPlayer(player)

		if err := store.Teams().Save(ctx, destination); err != nil {
			return err
		}

		confirmation = domain.NewTransferConfirmation(player.Name, player.Position, origin, destination.Name)
		event = domain.TransferEvent{
			EventID:           uuid.NewString(),
			PlayerID:          player.ID,
			PlayerName:        player.Name,
			Position:          player.Position,
			OriginTeam:        origin,
			DestinationTeamID: destination.ID,
			DestinationTeam:   destination.Name,
			Message:           confirmation.Message,
			OccurredAt:        time.Now().UTC().Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to transfer player: %w", err)
	}

	uc.Metrics.RecordTransfer(freeAgent)
	slog.Info("player transferred",
		"player_id", event.PlayerID,
		"origin", event.OriginTeam,
		"destination_team_id", event.DestinationTeamID,
	)
	uc.publishTransfer(event)

	return &confirmation, nil
}

func (uc *DefaultTeamUsecase) GetTeamByAcronym(ctx context.Context, acronym string) (*domain.Team, error) {
	var team *domain.Team
	err := uc.Tx.WithinTx(ctx, func(store domain.Store) error {
		found, ok, err := store.Teams().FindByAcronym(ctx, acronym)
		if err != nil {
			return err
		}
		if !ok {
			return domain.TeamNotFoundByAcronym(acronym)
		}
		team = found
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// publishTransfer runs after commit; a failed publish never affects the transfer itself.
func (uc *DefaultTeamUsecase) publishTransfer(event domain.TransferEvent) {
	if uc.Publisher == nil {
		return
	}

	uc.inflight.Add(1)
	go func(event domain.TransferEvent) {
		defer uc.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.publishTimeout)
		defer cancel()

		if err := uc.Publisher.PublishTransfer(ctx, event); err != nil {
			uc.Metrics.RecordTransferEventFailed()
			slog.Error("failed to publish TransferEvent", "event_id", event.EventID, "error", err.Error())
		}
	}(event)
}

// Wait blocks until pending transfer events have been handed to the publisher.
func (uc *DefaultTeamUsecase) Wait() {
	uc.inflight.Wait()
}
