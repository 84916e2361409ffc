package mission

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/milestone"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// CompleteMissionInput represents the input for mission completion.
type CompleteMissionInput struct {
	MissionID string
}

// CompleteMissionOutput represents the output of mission completion.
type CompleteMissionOutput struct {
	Changed   bool
	Mission   *entity.Mission
	XPAwarded int
	User      *entity.User
}

// CompleteMissionUseCase handles mission completion logic.
type CompleteMissionUseCase struct {
	engine     *engine.Engine
	dispatcher *milestone.Dispatcher
}

// NewCompleteMissionUseCase creates a new CompleteMissionUseCase instance.
func NewCompleteMissionUseCase(eng *engine.Engine, dispatcher *milestone.Dispatcher) *CompleteMissionUseCase {
	return &CompleteMissionUseCase{
		engine:     eng,
		dispatcher: dispatcher,
	}
}

// Execute completes the mission. Invalid transitions report Changed false.
func (uc *CompleteMissionUseCase) Execute(ctx context.Context, input CompleteMissionInput) (*CompleteMissionOutput, error) {
	res := uc.engine.CompleteMission(ctx, input.MissionID)
	uc.dispatcher.Dispatch(ctx, res.Events)

	out := &CompleteMissionOutput{
		Changed:   res.Completed,
		XPAwarded: res.XPAwarded,
		User:      uc.engine.User(),
	}
	if res.Mission.ID != "" {
		m := res.Mission
		out.Mission = &m
	}
	return out, nil
}
