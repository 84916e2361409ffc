package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/valueobject"
)

func TestIsValidHandle(t *testing.T) {
	tests := []struct {
		handle string
		valid  bool
	}{
		{"gabi", true},
		{"@gabi_99", true},
		{"abc", true},
		{"ab", false},
		{"@ab", false},
		{"a_very_long_handle_123", false},
		{"exactly_twenty_chars", true},
		{"com espaço", false},
		{"hífen-x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.handle, func(t *testing.T) {
			if got := IsValidHandle(tt.handle); got != tt.valid {
				t.Errorf("expected %v for %q, got %v", tt.valid, tt.handle, got)
			}
		})
	}
}

func TestNewUserProfile(t *testing.T) {
	p := NewUserProfile(" @gabi ", "avatar3")
	if p.Username != "@gabi" || p.DisplayName != "gabi" || !p.IsProfileSetup {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestUser_ApplyRevert(t *testing.T) {
	u := NewUser("x", 100, nil)
	day := valueobject.NewCalendarDay(2025, time.January, 2)
	in := NewTransaction(TransactionTypeIncome, decimal.NewFromInt(80), "", DefaultCategory, day, time.Now())
	out := NewTransaction(TransactionTypeExpense, decimal.RequireFromString("30.5"), "", DefaultCategory, day, time.Now())

	u.Apply(in)
	u.Apply(out)
	if !u.Balance.Equal(decimal.RequireFromString("49.5")) {
		t.Errorf("expected balance 49.5, got %s", u.Balance)
	}
	u.Revert(out)
	if !u.Balance.Equal(decimal.NewFromInt(80)) || !u.TotalExpenses.IsZero() {
		t.Errorf("expected revert to undo the expense, got %s / %s", u.Balance, u.TotalExpenses)
	}
	if !out.SignedAmount().Equal(decimal.RequireFromString("-30.5")) {
		t.Errorf("expected negative signed amount, got %s", out.SignedAmount())
	}
}

func TestEmailJob_Retry(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplateMilestone, "a@b.c", "A", "s", nil, now)
	if !job.IsReadyToProcess(now) {
		t.Fatal("expected new job to be ready")
	}

	job.MarkFailed(errTest("boom"), false, now)
	if job.Status != EmailStatusPending || !job.ScheduledAt.Equal(now.Add(time.Minute)) {
		t.Errorf("expected retry in 1 minute, got %s at %s", job.Status, job.ScheduledAt)
	}
	if job.IsReadyToProcess(now) {
		t.Error("expected job not ready before its retry time")
	}

	job.MarkFailed(errTest("boom"), false, now)
	job.MarkFailed(errTest("boom"), false, now)
	if job.Status != EmailStatusFailed || job.ProcessedAt == nil || job.CanRetry() {
		t.Errorf("expected job failed after max attempts, got %s", job.Status)
	}

	permanent := NewEmailJob(TemplateMilestone, "a@b.c", "A", "s", nil, now)
	permanent.MarkFailed(errTest("bad address"), true, now)
	if permanent.Status != EmailStatusFailed || permanent.Attempts != 1 {
		t.Errorf("expected permanent failure on first attempt, got %s", permanent.Status)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
