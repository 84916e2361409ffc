// Package mission contains mission-related use cases.
package mission

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// ListMissionsOutput represents the output of listing missions.
type ListMissionsOutput struct {
	Daily []entity.Mission
	Path  []entity.Mission
}

// ListMissionsUseCase handles mission listing logic.
type ListMissionsUseCase struct {
	engine *engine.Engine
}

// NewListMissionsUseCase creates a new ListMissionsUseCase instance.
func NewListMissionsUseCase(eng *engine.Engine) *ListMissionsUseCase {
	return &ListMissionsUseCase{engine: eng}
}

// Execute applies the day rollover and returns missions grouped by type.
func (uc *ListMissionsUseCase) Execute(ctx context.Context) (*ListMissionsOutput, error) {
	uc.engine.Rollover(ctx)

	out := &ListMissionsOutput{
		Daily: []entity.Mission{},
		Path:  []entity.Mission{},
	}
	for _, m := range uc.engine.Missions() {
		if m.Type == entity.MissionTypeDaily {
			out.Daily = append(out.Daily, m)
		} else {
			out.Path = append(out.Path, m)
		}
	}
	return out, nil
}
