package settings

import (
	"context"
	"testing"

	"github.com/contacomigo/backend/internal/application/usecase/usecasetest"
)

func TestUpdateSettingsUseCase(t *testing.T) {
	eng := usecasetest.NewEngine(t)
	ctx := context.Background()

	got, _ := NewGetSettingsUseCase(eng).Execute(ctx)
	if !got.Settings.Notifications || got.Settings.DarkMode {
		t.Fatalf("unexpected defaults %+v", got.Settings)
	}

	dark := true
	out, err := NewUpdateSettingsUseCase(eng).Execute(ctx, UpdateSettingsInput{DarkMode: &dark})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Settings.DarkMode {
		t.Error("expected dark mode on")
	}
	if !out.Settings.Notifications {
		t.Error("expected notifications to be left unchanged")
	}
}
