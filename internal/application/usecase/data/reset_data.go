// Package data contains whole-state maintenance use cases.
package data

import (
	"context"
	"log/slog"

	"github.com/contacomigo/backend/internal/application/engine"
)

// ResetDataOutput represents the output of a data reset.
type ResetDataOutput struct {
	Message string
}

// ResetDataUseCase erases all progression data.
type ResetDataUseCase struct {
	engine *engine.Engine
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(eng *engine.Engine) *ResetDataUseCase {
	return &ResetDataUseCase{engine: eng}
}

// Execute resets the engine. Memory is always reset; a store failure is
// logged and the stale keys are overwritten by the next mutation.
func (uc *ResetDataUseCase) Execute(ctx context.Context) (*ResetDataOutput, error) {
	if err := uc.engine.Reset(ctx); err != nil {
		slog.Warn("Failed to clear stored state", "error", err)
	}
	return &ResetDataOutput{Message: "All data has been reset"}, nil
}
