// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
)

// GetSummaryOutput represents the home screen aggregate.
type GetSummaryOutput struct {
	Dashboard engine.Dashboard
}

// GetSummaryUseCase handles the dashboard summary.
type GetSummaryUseCase struct {
	engine *engine.Engine
	policy engine.HabitPolicy
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(eng *engine.Engine, policy engine.HabitPolicy) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		engine: eng,
		policy: policy,
	}
}

// Execute applies the day rollover and recomputes the analytics.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	uc.engine.Rollover(ctx)
	return &GetSummaryOutput{Dashboard: uc.engine.Dashboard(uc.policy)}, nil
}
