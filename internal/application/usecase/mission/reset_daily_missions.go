package mission

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
)

// ResetDailyMissionsOutput represents the output of the daily sweep.
type ResetDailyMissionsOutput struct {
	Changed bool
}

// ResetDailyMissionsUseCase handles the daily mission sweep.
type ResetDailyMissionsUseCase struct {
	engine *engine.Engine
}

// NewResetDailyMissionsUseCase creates a new ResetDailyMissionsUseCase instance.
func NewResetDailyMissionsUseCase(eng *engine.Engine) *ResetDailyMissionsUseCase {
	return &ResetDailyMissionsUseCase{engine: eng}
}

// Execute reopens completed daily missions once per calendar day.
func (uc *ResetDailyMissionsUseCase) Execute(ctx context.Context) (*ResetDailyMissionsOutput, error) {
	return &ResetDailyMissionsOutput{Changed: uc.engine.ResetDailyMissions(ctx)}, nil
}
