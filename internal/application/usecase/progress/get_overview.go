// Package progress contains user progression use cases.
package progress

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// GetOverviewOutput represents the user aggregate with its lifetime counters.
type GetOverviewOutput struct {
	User          *entity.User
	Progress      entity.UserProgress
	League        valueobject.League
	NextLeague    *valueobject.League
	LevelProgress int
}

// GetOverviewUseCase returns the user's progression state.
type GetOverviewUseCase struct {
	engine  *engine.Engine
	leagues []valueobject.League
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(eng *engine.Engine, leagues []valueobject.League) *GetOverviewUseCase {
	if len(leagues) == 0 {
		leagues = valueobject.DefaultLeagues
	}
	return &GetOverviewUseCase{engine: eng, leagues: leagues}
}

// Execute returns the overview.
func (uc *GetOverviewUseCase) Execute(_ context.Context) (*GetOverviewOutput, error) {
	user := uc.engine.User()
	league := uc.engine.League()

	out := &GetOverviewOutput{
		User:          user,
		Progress:      uc.engine.Progress(),
		League:        league,
		LevelProgress: engine.LevelProgress(user),
	}
	if next, ok := valueobject.NextLeague(uc.leagues, league); ok {
		out.NextLeague = &next
	}
	return out, nil
}
