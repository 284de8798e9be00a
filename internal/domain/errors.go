package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrTeamAlreadyExists = errors.New("team already exists")
	ErrTeamNotFound      = fmt.Errorf("team %w", ErrNotFound)
	ErrPlayerNotFound    = fmt.Errorf("player %w", ErrNotFound)
)

// MessageError carries the message shown to API clients; errors.Is matches its Kind.
type MessageError struct {
	Kind    error
	Message string
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Kind
}

func TeamAlreadyExists(acronym string) error {
	return &MessageError{
		Kind:    ErrTeamAlreadyExists,
		Message: fmt.Sprintf("Une équipe avec l'acronyme %s existe déjà", acronym),
	}
}

func PlayerNotFound(playerID int64) error {
	return &MessageError{
		Kind:    ErrPlayerNotFound,
		Message: fmt.Sprintf("Joueur non trouvé avec l'ID: %d", playerID),
	}
}

func TeamNotFound(teamID int64) error {
	return &MessageError{
		Kind:    ErrTeamNotFound,
		Message: fmt.Sprintf("Équipe non trouvée avec l'ID: %d", teamID),
	}
}

func TeamNotFoundByAcronym(acronym string) error {
	return &MessageError{
		Kind:    ErrTeamNotFound,
		Message: fmt.Sprintf("Équipe non trouvée avec l'acronyme: %s", acronym),
	}
}
