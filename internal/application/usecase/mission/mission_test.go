package mission

import (
	"context"
	"testing"
	"time"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/usecasetest"
	"github.com/contacomigo/backend/internal/domain/entity"
)

func TestListMissionsUseCase(t *testing.T) {
	eng := usecasetest.NewEngine(t)

	out, err := NewListMissionsUseCase(eng).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Daily) != 3 {
		t.Errorf("expected 3 daily missions, got %d", len(out.Daily))
	}
	if len(out.Path) != 5 {
		t.Errorf("expected 5 path missions, got %d", len(out.Path))
	}
	if out.Path[0].Status != entity.MissionStatusAvailable {
		t.Errorf("expected first path mission available, got %s", out.Path[0].Status)
	}
}

func TestListMissionsUseCase_RollsOverDay(t *testing.T) {
	eng, _, clock := usecasetest.NewEngineWith(t)
	ctx := context.Background()
	complete := NewCompleteMissionUseCase(eng, nil)

	if out, _ := complete.Execute(ctx, CompleteMissionInput{MissionID: "d3"}); !out.Changed {
		t.Fatal("expected d3 to complete")
	}
	clock.Advance(24 * time.Hour)

	out, _ := NewListMissionsUseCase(eng).Execute(ctx)
	for _, m := range out.Daily {
		if m.Status != entity.MissionStatusAvailable {
			t.Errorf("expected %s available after rollover, got %s", m.ID, m.Status)
		}
	}
}

func TestCompleteMissionUseCase(t *testing.T) {
	tests := []struct {
		name      string
		missionID string
		changed   bool
		xp        int
	}{
		{name: "available path mission", missionID: "p1", changed: true, xp: engine.XPPathMission},
		{name: "locked path mission", missionID: "p3", changed: false},
		{name: "unknown mission", missionID: "zz", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := usecasetest.NewEngine(t)
			out, err := NewCompleteMissionUseCase(eng, nil).Execute(context.Background(), CompleteMissionInput{MissionID: tt.missionID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Changed != tt.changed {
				t.Errorf("expected changed %v, got %v", tt.changed, out.Changed)
			}
			if out.XPAwarded != tt.xp {
				t.Errorf("expected %d xp, got %d", tt.xp, out.XPAwarded)
			}
			if tt.missionID == "zz" && out.Mission != nil {
				t.Error("expected no mission for unknown id")
			}
		})
	}
}

func TestResetDailyMissionsUseCase(t *testing.T) {
	eng, _, clock := usecasetest.NewEngineWith(t)
	ctx := context.Background()
	uc := NewResetDailyMissionsUseCase(eng)

	eng.CompleteMission(ctx, "d3")
	if out, _ := uc.Execute(ctx); out.Changed {
		t.Error("expected no sweep on the same day")
	}

	clock.Advance(24 * time.Hour)
	out, _ := uc.Execute(ctx)
	if !out.Changed {
		t.Error("expected sweep on the next day")
	}
	if again, _ := uc.Execute(ctx); again.Changed {
		t.Error("expected sweep to be idempotent")
	}
}
