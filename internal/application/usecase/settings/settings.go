// Package settings contains app settings use cases.
package settings

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// SettingsOutput represents the current settings.
type SettingsOutput struct {
	Settings entity.AppSettings
}

// GetSettingsUseCase returns the settings.
type GetSettingsUseCase struct {
	engine *engine.Engine
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(eng *engine.Engine) *GetSettingsUseCase {
	return &GetSettingsUseCase{engine: eng}
}

// Execute returns the settings.
func (uc *GetSettingsUseCase) Execute(_ context.Context) (*SettingsOutput, error) {
	return &SettingsOutput{Settings: uc.engine.Settings()}, nil
}

// UpdateSettingsInput represents a partial settings update.
type UpdateSettingsInput struct {
	Notifications *bool
	DarkMode      *bool
}

// UpdateSettingsUseCase applies partial settings updates.
type UpdateSettingsUseCase struct {
	engine *engine.Engine
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(eng *engine.Engine) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{engine: eng}
}

// Execute updates the given toggles and returns the result.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*SettingsOutput, error) {
	s := uc.engine.UpdateSettings(ctx, engine.SettingsUpdate{
		Notifications: input.Notifications,
		DarkMode:      input.DarkMode,
	})
	return &SettingsOutput{Settings: s}, nil
}
