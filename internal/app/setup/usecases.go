package setup

import (
	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/LavaJover/football-team-service/internal/usecase"
)

type UseCases struct {
	TeamUsecase *usecase.DefaultTeamUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	// a typed nil publisher must not reach the usecase as a non-nil interface
	var pub domain.TransferPublisher
	if deps.Publisher != nil {
		pub = deps.Publisher
	}

	return &UseCases{
		TeamUsecase: usecase.NewDefaultTeamUsecase(deps.Store, pub, deps.Metrics),
	}
}
