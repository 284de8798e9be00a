package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateError maps unique-constraint violations to domain.ErrTeamAlreadyExists.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", domain.ErrTeamAlreadyExists, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrTeamAlreadyExists, pgErr.Detail)
	}
	return err
}
