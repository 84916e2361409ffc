package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

func TestLevelCurve(t *testing.T) {
	if LevelCurve(1) != 100 {
		t.Errorf("expected 100 at level 1, got %d", LevelCurve(1))
	}
	for level := 1; level < 50; level++ {
		if LevelCurve(level+1) <= LevelCurve(level) {
			t.Fatalf("expected curve to increase between level %d and %d", level, level+1)
		}
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	e, store, _ := newTestEngine(t)

	u := e.User()
	if u.Level != 1 || u.XP != 0 || u.XPToNextLevel != 100 {
		t.Errorf("expected fresh level 1 user, got level %d xp %d/%d", u.Level, u.XP, u.XPToNextLevel)
	}
	if len(u.Badges) != len(BadgeCatalog()) {
		t.Errorf("expected %d badges, got %d", len(BadgeCatalog()), len(u.Badges))
	}
	if got := len(e.Community()); got != 2 {
		t.Errorf("expected 2 seeded posts, got %d", got)
	}
	if missionStatus(e, "p1") != entity.MissionStatusAvailable || missionStatus(e, "p2") != entity.MissionStatusLocked {
		t.Error("expected p1 available and p2 locked")
	}
	for _, s := range valueobject.EngineSlices {
		if _, ok := store.data[valueobject.DefaultNamespace.Key(s)]; !ok {
			t.Errorf("expected default slice %s to be written on first load", s)
		}
	}
}

func TestAddTransaction_FirstExpense(t *testing.T) {
	e, _, _ := newTestEngine(t)

	res := mustAdd(t, e, expense(50))

	u := e.User()
	if !u.Balance.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected balance -50, got %s", u.Balance)
	}
	if !u.TotalExpenses.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected total expenses 50, got %s", u.TotalExpenses)
	}
	p := e.Progress()
	if p.TotalTransactions != 1 {
		t.Errorf("expected 1 transaction, got %d", p.TotalTransactions)
	}
	if res.XPAwarded != XPRegisterTransaction+XPDailyMission {
		t.Errorf("expected %d xp awarded, got %d", XPRegisterTransaction+XPDailyMission, res.XPAwarded)
	}
	if p.TotalXP != res.XPAwarded || u.XP != res.XPAwarded {
		t.Errorf("expected xp %d, got user %d total %d", res.XPAwarded, u.XP, p.TotalXP)
	}
	if res.CompletedMission != MissionRegisterExpense {
		t.Errorf("expected d1 completed, got %q", res.CompletedMission)
	}
	if !badgeUnlocked(u, "first_step") {
		t.Error("expected first_step unlocked")
	}
	if u.Streak != 1 || p.ConsciousDays != 1 {
		t.Errorf("expected streak 1 and 1 conscious day, got %d and %d", u.Streak, p.ConsciousDays)
	}
	if res.Transaction.Category != "alimentacao" || !res.Transaction.Date.Equal(valueobject.DayOf(testStart, time.UTC)) {
		t.Errorf("unexpected transaction %+v", res.Transaction)
	}
}

func TestAddTransaction_Defaults(t *testing.T) {
	e, _, _ := newTestEngine(t)

	res := mustAdd(t, e, TransactionInput{
		Type:        entity.TransactionTypeIncome,
		Amount:      decimal.RequireFromString("12.34"),
		Description: "  freela  ",
		Date:        valueobject.NewCalendarDay(2025, time.March, 1),
	})

	if res.Transaction.Category != entity.DefaultCategory {
		t.Errorf("expected default category, got %q", res.Transaction.Category)
	}
	if res.Transaction.Description != "freela" {
		t.Errorf("expected trimmed description, got %q", res.Transaction.Description)
	}
	if res.Transaction.Date.String() != "2025-03-01" {
		t.Errorf("expected given date, got %s", res.Transaction.Date)
	}
	if res.CompletedMission != MissionRegisterIncome {
		t.Errorf("expected d2 completed, got %q", res.CompletedMission)
	}
}

func TestAddTransaction_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   TransactionInput
		code domainerror.TransactionErrorCode
	}{
		{
			name: "zero amount",
			in:   TransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.Zero},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "negative amount",
			in:   TransactionInput{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(-5)},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "unknown type",
			in:   TransactionInput{Type: "transfer", Amount: decimal.NewFromInt(5)},
			code: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "description too long",
			in:   TransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Description: strings.Repeat("a", 256)},
			code: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name: "income category on expense",
			in:   TransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(5), Category: "salario"},
			code: domainerror.ErrCodeTxnCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store, _ := newTestEngine(t)
			writes := len(store.sets)
			before := store.sets[valueobject.DefaultNamespace.Key(valueobject.SliceUser)]

			_, err := e.AddTransaction(context.Background(), tt.in)

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txnErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, txnErr.Code)
			}
			if len(e.Transactions(TransactionFilter{})) != 0 || e.User().XP != 0 {
				t.Error("expected no mutation on validation failure")
			}
			if len(store.sets) != writes || store.sets[valueobject.DefaultNamespace.Key(valueobject.SliceUser)] != before {
				t.Error("expected no store writes on validation failure")
			}
		})
	}
}

func TestAddTransaction_DescriptionAtLimit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	in := expense(1)
	in.Description = strings.Repeat("ç", MaxDescriptionLength)
	mustAdd(t, e, in)
}

func TestDeleteTransaction(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	mustAdd(t, e, income(100))
	spent := mustAdd(t, e, expense(40))
	xpBefore := e.Progress().TotalXP

	deleted, _ := e.DeleteTransaction(ctx, spent.Transaction.ID)
	if !deleted {
		t.Fatal("expected transaction to be deleted")
	}

	u := e.User()
	if !u.Balance.Equal(decimal.NewFromInt(100)) || !u.TotalExpenses.IsZero() {
		t.Errorf("expected balance 100 and no expenses, got %s and %s", u.Balance, u.TotalExpenses)
	}
	p := e.Progress()
	if p.TotalXP != xpBefore || p.TotalTransactions != 2 {
		t.Errorf("expected xp and counters kept, got xp %d transactions %d", p.TotalXP, p.TotalTransactions)
	}
	if missionStatus(e, MissionRegisterExpense) != entity.MissionStatusCompleted {
		t.Error("expected d1 to stay completed")
	}
	if got := len(e.Transactions(TransactionFilter{})); got != 1 {
		t.Errorf("expected 1 transaction left, got %d", got)
	}

	deleted, _ = e.DeleteTransaction(ctx, uuid.New())
	if deleted {
		t.Error("expected unknown id to be a no-op")
	}
}

func TestDeleteTransaction_NilIDNeverMatches(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	mustAdd(t, e, expense(25))
	e.st.transactions[0].ID = uuid.Nil

	deleted, _ := e.DeleteTransaction(ctx, uuid.Nil)
	if deleted {
		t.Error("expected the nil id to be refused")
	}
	if got := len(e.Transactions(TransactionFilter{})); got != 1 {
		t.Errorf("expected the stored transaction kept, got %d", got)
	}
}

func TestBalanceIdentity(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	var ids []uuid.UUID
	amounts := []int64{120, 35, 900, 12, 77, 5, 430}
	for i, a := range amounts {
		in := expense(a)
		if i%2 == 0 {
			in = income(a)
		}
		ids = append(ids, mustAdd(t, e, in).Transaction.ID)
		assertBalanceIdentity(t, e.User())
		clock.Advance(3 * time.Hour)
	}
	for i, id := range ids {
		if i%3 == 0 {
			continue
		}
		e.DeleteTransaction(ctx, id)
		assertBalanceIdentity(t, e.User())
	}
	e.DeleteTransaction(ctx, ids[1])
	assertBalanceIdentity(t, e.User())
}

func TestTransactions_Filter(t *testing.T) {
	e, _, _ := newTestEngine(t)
	mustAdd(t, e, expense(1))
	mustAdd(t, e, income(2))
	last := mustAdd(t, e, expense(3))

	all := e.Transactions(TransactionFilter{})
	if len(all) != 3 || all[0].ID != last.Transaction.ID {
		t.Fatalf("expected 3 transactions newest first, got %d", len(all))
	}
	if got := e.Transactions(TransactionFilter{Type: entity.TransactionTypeExpense}); len(got) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(got))
	}
	if got := e.Transactions(TransactionFilter{Limit: 1}); len(got) != 1 {
		t.Errorf("expected limit 1, got %d", len(got))
	}
}

func TestAddXP_LevelUpScenario(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.st.user.Level = 3
	e.st.user.XP = 90
	e.st.user.XPToNextLevel = 100

	events := e.AddXP(context.Background(), 25)

	u := e.User()
	if u.XP != 15 || u.Level != 4 {
		t.Errorf("expected xp 15 level 4, got xp %d level %d", u.XP, u.Level)
	}
	if u.XPToNextLevel != LevelCurve(4) {
		t.Errorf("expected xp to next level %d, got %d", LevelCurve(4), u.XPToNextLevel)
	}
	if len(events) != 1 || events[0].Kind != entity.FeedEventLevelUp || events[0].Message != "subiu para o nível 4!" {
		t.Errorf("unexpected events %+v", events)
	}
	if e.Community()[0].Action != "subiu para o nível 4!" {
		t.Errorf("expected level-up post, got %q", e.Community()[0].Action)
	}
}

func TestAddXP_Rollover(t *testing.T) {
	tests := []struct {
		name      string
		amount    int
		levelUps  int
		wantLevel int
		wantXP    int
	}{
		{name: "below threshold", amount: 99, levelUps: 0, wantLevel: 1, wantXP: 99},
		{name: "exact threshold", amount: 100, levelUps: 1, wantLevel: 2, wantXP: 0},
		{name: "three levels at once", amount: 450, levelUps: 3, wantLevel: 4, wantXP: 0},
		{name: "three levels with remainder", amount: 449, levelUps: 2, wantLevel: 3, wantXP: 199},
		{name: "zero is a no-op", amount: 0, levelUps: 0, wantLevel: 1, wantXP: 0},
		{name: "negative is a no-op", amount: -10, levelUps: 0, wantLevel: 1, wantXP: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)

			events := e.AddXP(context.Background(), tt.amount)

			levelUps := 0
			for _, ev := range events {
				if ev.Kind == entity.FeedEventLevelUp {
					levelUps++
				}
			}
			u := e.User()
			if levelUps != tt.levelUps {
				t.Errorf("expected %d level-ups, got %d", tt.levelUps, levelUps)
			}
			if u.Level != tt.wantLevel || u.XP != tt.wantXP {
				t.Errorf("expected level %d xp %d, got level %d xp %d", tt.wantLevel, tt.wantXP, u.Level, u.XP)
			}
			if u.XP < 0 || u.XP >= u.XPToNextLevel {
				t.Errorf("expected xp in [0, %d), got %d", u.XPToNextLevel, u.XP)
			}
		})
	}
}

func TestAddXP_TotalXPIndependentOfRollover(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.AddXP(context.Background(), 450)
	e.AddXP(context.Background(), 30)
	if got := e.Progress().TotalXP; got != 480 {
		t.Errorf("expected total xp 480, got %d", got)
	}
}

func TestCompleteMission_DailyTwice(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	first := e.CompleteMission(ctx, MissionRegisterExpense)
	second := e.CompleteMission(ctx, MissionRegisterExpense)

	if !first.Completed || first.XPAwarded != XPDailyMission {
		t.Errorf("expected first completion with %d xp, got %+v", XPDailyMission, first)
	}
	if second.Completed || second.XPAwarded != 0 {
		t.Errorf("expected second completion to be a no-op, got %+v", second)
	}
	p := e.Progress()
	if p.TotalXP != XPDailyMission || p.CompletedMissions != 1 {
		t.Errorf("expected xp %d and 1 mission, got %d and %d", XPDailyMission, p.TotalXP, p.CompletedMissions)
	}
	if first.Mission.CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
}

func TestCompleteMission_PathChain(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	res := e.CompleteMission(ctx, "p1")
	if !res.Completed || res.XPAwarded != XPPathMission {
		t.Fatalf("expected p1 completed with %d xp, got %+v", XPPathMission, res)
	}
	want := map[string]entity.MissionStatus{
		"p1": entity.MissionStatusCompleted,
		"p2": entity.MissionStatusAvailable,
		"p3": entity.MissionStatusLocked,
		"p4": entity.MissionStatusLocked,
		"p5": entity.MissionStatusLocked,
	}
	for id, status := range want {
		if got := missionStatus(e, id); got != status {
			t.Errorf("expected %s %s, got %s", id, status, got)
		}
	}

	if e.CompleteMission(ctx, "p3").Completed {
		t.Error("expected locked mission to be ignored")
	}
	if e.CompleteMission(ctx, "nope").Completed {
		t.Error("expected unknown mission to be ignored")
	}
}

func TestCompleteMission_SingleHead(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		if !e.CompleteMission(ctx, id).Completed {
			t.Fatalf("expected %s to complete", id)
		}
		available := 0
		for _, m := range e.Missions() {
			if m.Type == entity.MissionTypePath && m.Status == entity.MissionStatusAvailable {
				available++
			}
		}
		if available > 1 {
			t.Fatalf("expected at most one available path mission after %s, got %d", id, available)
		}
	}
	if got := e.Progress().CompletedMissions; got != 5 {
		t.Errorf("expected 5 completed missions, got %d", got)
	}
}

func TestResetDailyMissions_Idempotent(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	e.CompleteMission(ctx, MissionRegisterExpense)
	if e.ResetDailyMissions(ctx) {
		t.Error("expected no reset on the day of the last sweep")
	}

	clock.Advance(24 * time.Hour)
	if !e.ResetDailyMissions(ctx) {
		t.Fatal("expected reset on the next day")
	}
	if missionStatus(e, MissionRegisterExpense) != entity.MissionStatusAvailable {
		t.Error("expected d1 available after reset")
	}
	for _, m := range e.Missions() {
		if m.Type == entity.MissionTypeDaily && m.CompletedAt != nil {
			t.Errorf("expected completedAt cleared on %s", m.ID)
		}
	}
	e.CompleteMission(ctx, MissionRegisterExpense)
	if e.ResetDailyMissions(ctx) {
		t.Error("expected second sweep on the same day to be a no-op")
	}
	if missionStatus(e, MissionRegisterExpense) != entity.MissionStatusCompleted {
		t.Error("expected d1 to stay completed")
	}
	if got := e.Progress().LastDailyReset; !got.Equal(valueobject.DayOf(clock.Now(), time.UTC)) {
		t.Errorf("expected marker at today, got %s", got)
	}
}

func TestResetDailyMissions_KeepsPath(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	e.CompleteMission(ctx, "p1")
	clock.Advance(24 * time.Hour)
	e.ResetDailyMissions(ctx)

	if missionStatus(e, "p1") != entity.MissionStatusCompleted {
		t.Error("expected path mission to stay completed")
	}
}

func TestRecordActivity_OncePerDay(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		e.RecordActivity(ctx)
	}

	if got := e.User().Streak; got != 1 {
		t.Errorf("expected streak 1, got %d", got)
	}
	if got := e.Progress().ConsciousDays; got != 1 {
		t.Errorf("expected 1 conscious day, got %d", got)
	}
}

func TestConsciousDays_TwoTransactionsSameDay(t *testing.T) {
	e, _, clock := newTestEngine(t)

	mustAdd(t, e, expense(10))
	clock.Advance(2 * time.Hour)
	mustAdd(t, e, income(10))
	if got := e.Progress().ConsciousDays; got != 1 {
		t.Errorf("expected 1 conscious day, got %d", got)
	}

	clock.Advance(24 * time.Hour)
	mustAdd(t, e, expense(10))
	if got := e.Progress().ConsciousDays; got != 2 {
		t.Errorf("expected 2 conscious days, got %d", got)
	}
	if got := e.User().Streak; got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestStreakBreakage(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	mustAdd(t, e, expense(1))
	clock.Advance(24 * time.Hour)
	mustAdd(t, e, expense(1))

	clock.Advance(24 * time.Hour)
	if res := e.Rollover(ctx); res.StreakBroken {
		t.Fatal("expected streak kept after a one day gap")
	}

	clock.Advance(48 * time.Hour)
	res := e.Rollover(ctx)
	if !res.StreakBroken {
		t.Fatal("expected streak broken after skipping days")
	}
	if got := e.User().Streak; got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
	if got := e.Progress().HighestStreak; got != 2 {
		t.Errorf("expected highest streak 2, got %d", got)
	}
	if e.Rollover(ctx).StreakBroken {
		t.Error("expected repeated check to be a no-op")
	}

	mustAdd(t, e, expense(1))
	if got := e.User().Streak; got != 1 {
		t.Errorf("expected streak to restart at 1, got %d", got)
	}
}

func TestStreakBreakage_AppliedBeforeActivity(t *testing.T) {
	e, _, clock := newTestEngine(t)

	mustAdd(t, e, expense(1))
	clock.Advance(24 * time.Hour)
	mustAdd(t, e, expense(1))
	clock.Advance(5 * 24 * time.Hour)
	mustAdd(t, e, expense(1))

	if got := e.User().Streak; got != 1 {
		t.Errorf("expected streak 1 after a gap, got %d", got)
	}
	if got := e.Progress().ConsciousDays; got != 3 {
		t.Errorf("expected 3 conscious days, got %d", got)
	}
}

func TestStreakMilestone(t *testing.T) {
	e, _, clock := newTestEngine(t)

	var last *AddTransactionResult
	for day := 0; day < 7; day++ {
		last = mustAdd(t, e, expense(5))
		clock.Advance(24 * time.Hour)
	}

	var milestone, badge bool
	for _, ev := range last.Events {
		if ev.Kind == entity.FeedEventStreakMilestone && ev.Message == "mantém uma streak de 7 dias!" {
			milestone = true
		}
		if ev.Kind == entity.FeedEventBadgeUnlocked && ev.BadgeID == "7_days" {
			badge = true
		}
	}
	if !milestone {
		t.Error("expected streak milestone event")
	}
	if !badge {
		t.Error("expected 7_days badge event")
	}
}

func TestBadgeMonotonicity(t *testing.T) {
	e, _, _ := newTestEngine(t)

	res := mustAdd(t, e, income(1000))
	if !badgeUnlocked(e.User(), "poupador") {
		t.Fatal("expected poupador unlocked at balance 1000")
	}
	found := false
	for _, ev := range res.Events {
		if ev.BadgeID == "poupador" && ev.Message == "desbloqueou o badge Poupador!" {
			found = true
		}
	}
	if !found {
		t.Error("expected poupador feed event")
	}

	mustAdd(t, e, expense(600))
	e.DeleteTransaction(context.Background(), res.Transaction.ID)
	if !badgeUnlocked(e.User(), "poupador") {
		t.Error("expected poupador to stay unlocked after balance dropped")
	}
	if !badgeUnlocked(e.User(), "first_step") {
		t.Error("expected first_step to stay unlocked")
	}
}

func TestBadgeRules(t *testing.T) {
	tests := []struct {
		condition string
		below     Snapshot
		at        Snapshot
	}{
		{ConditionFirstTransaction, Snapshot{}, Snapshot{TotalTransactions: 1}},
		{ConditionStreak7, Snapshot{Streak: 6}, Snapshot{Streak: 7}},
		{ConditionBalance1000, Snapshot{Balance: decimal.RequireFromString("999.99")}, Snapshot{Balance: decimal.NewFromInt(1000)}},
		{ConditionTransactions50, Snapshot{TotalTransactions: 49}, Snapshot{TotalTransactions: 50}},
		{ConditionMissions10, Snapshot{CompletedMissions: 9}, Snapshot{CompletedMissions: 10}},
		{ConditionLevel20, Snapshot{Level: 19}, Snapshot{Level: 20}},
		{ConditionConsciousDays30, Snapshot{ConsciousDays: 29}, Snapshot{ConsciousDays: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			rule, ok := ruleFor(tt.condition)
			if !ok {
				t.Fatalf("expected rule for %s", tt.condition)
			}
			if rule.Holds(tt.below) {
				t.Error("expected rule not to hold below threshold")
			}
			if !rule.Holds(tt.at) {
				t.Error("expected rule to hold at threshold")
			}
		})
	}

	for _, b := range BadgeCatalog() {
		if _, ok := ruleFor(b.Condition); !ok {
			t.Errorf("badge %s has no rule for condition %s", b.ID, b.Condition)
		}
	}
}

func TestFeedCap(t *testing.T) {
	e, _, _ := newTestEngine(t)

	e.AddXP(context.Background(), 100000)

	feed := e.Community()
	if len(feed) != FeedLimit {
		t.Fatalf("expected %d posts, got %d", FeedLimit, len(feed))
	}
	if feed[0].Action != "desbloqueou o badge Mestre!" {
		t.Errorf("expected newest post first, got %q", feed[0].Action)
	}
	if !feed[0].IsUserPost || feed[0].ReactionType != entity.ReactionFire || feed[0].UserName != DefaultUserName {
		t.Errorf("unexpected post %+v", feed[0])
	}
	u := e.User()
	if u.XP >= u.XPToNextLevel {
		t.Errorf("expected xp below %d, got %d", u.XPToNextLevel, u.XP)
	}
}

func TestLikePost(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	key := valueobject.DefaultNamespace.Key(valueobject.SliceCommunity)
	writes := store.sets[key]

	post, ok := e.LikePost(ctx, "c1")
	if !ok || post.Likes != 13 {
		t.Errorf("expected 13 likes, got %d (%v)", post.Likes, ok)
	}
	if store.sets[key] != writes+1 {
		t.Error("expected community slice persisted")
	}
	if _, ok := e.LikePost(ctx, "missing"); ok {
		t.Error("expected unknown post to be ignored")
	}
}

func TestUpdateUserName(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.UpdateUserName(ctx, "   "); err == nil {
		t.Error("expected error for blank name")
	}
	u, err := e.UpdateUserName(ctx, " gabi ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "gabi" {
		t.Errorf("expected gabi, got %q", u.Name)
	}
	e.AddXP(ctx, 100)
	if got := e.Community()[0].UserName; got != "gabi" {
		t.Errorf("expected post by gabi, got %q", got)
	}
}

func TestUpdateSettings(t *testing.T) {
	e, _, _ := newTestEngine(t)
	off := false
	on := true

	s := e.UpdateSettings(context.Background(), SettingsUpdate{DarkMode: &on})
	if !s.DarkMode || !s.Notifications {
		t.Errorf("expected dark mode on and notifications kept, got %+v", s)
	}
	s = e.UpdateSettings(context.Background(), SettingsUpdate{Notifications: &off})
	if s.Notifications || !s.DarkMode {
		t.Errorf("expected notifications off and dark mode kept, got %+v", s)
	}
}

func TestLeague(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if got := e.League().Name; got != "Bronze" {
		t.Errorf("expected Bronze, got %s", got)
	}
	e.AddXP(context.Background(), 499)
	if got := e.League().Name; got != "Bronze" {
		t.Errorf("expected Bronze at 499, got %s", got)
	}
	e.AddXP(context.Background(), 1)
	if got := e.League().Name; got != "Prata" {
		t.Errorf("expected Prata at 500, got %s", got)
	}
}

func TestPersistence_WriteThroughAndReload(t *testing.T) {
	e, store, clock := newTestEngine(t)
	ctx := context.Background()

	mustAdd(t, e, income(300))
	mustAdd(t, e, expense(120))
	e.CompleteMission(ctx, "p1")

	reloaded := New(store, clock, Options{Location: time.UTC})
	reloaded.Load(ctx)

	want := e.State()
	got := reloaded.State()
	if len(got.Transactions) != len(want.Transactions) {
		t.Fatalf("expected %d transactions, got %d", len(want.Transactions), len(got.Transactions))
	}
	if !got.User.Balance.Equal(want.User.Balance) || got.User.XP != want.User.XP || got.User.Level != want.User.Level {
		t.Errorf("expected user %+v, got %+v", want.User, got.User)
	}
	if got.Progress.TotalXP != want.Progress.TotalXP || got.Progress.ConsciousDays != want.Progress.ConsciousDays {
		t.Errorf("expected progress %+v, got %+v", want.Progress, got.Progress)
	}
	if missionStatus(reloaded, "p2") != entity.MissionStatusAvailable {
		t.Error("expected p2 available after reload")
	}
	if got.Transactions[0].ID != want.Transactions[0].ID || !got.Transactions[0].Date.Equal(want.Transactions[0].Date) {
		t.Error("expected transactions to round-trip")
	}
}

func TestLoad_CorruptSliceFallsBack(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	ns := valueobject.DefaultNamespace

	store.data[ns.Key(valueobject.SliceUser)] = []byte("{not json")
	store.data[ns.Key(valueobject.SliceSettings)] = []byte(`{"darkMode":true}`)
	store.failGet[ns.Key(valueobject.SliceCommunity)] = true

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	if e.User().Level != 1 || e.User().Name != DefaultUserName {
		t.Error("expected default user for corrupt slice")
	}
	s := e.Settings()
	if !s.DarkMode || !s.Notifications {
		t.Errorf("expected merged settings, got %+v", s)
	}
	if len(e.Community()) != 2 {
		t.Error("expected seeded feed when read fails")
	}
}

func TestLoad_ReconcilesBadges(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	store.data[valueobject.DefaultNamespace.Key(valueobject.SliceUser)] = []byte(`{
		"name": "Ana", "level": 2, "xp": 10, "xpToNextLevel": 150,
		"badges": [
			{"id": "poupador", "name": "Antigo", "unlocked": true},
			{"id": "removed", "name": "Removido", "unlocked": true}
		]
	}`)

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	u := e.User()
	if u.Name != "Ana" || u.Level != 2 {
		t.Errorf("expected stored fields kept, got %+v", u)
	}
	if len(u.Badges) != len(BadgeCatalog()) {
		t.Fatalf("expected %d badges, got %d", len(BadgeCatalog()), len(u.Badges))
	}
	for _, b := range u.Badges {
		if b.ID == "removed" {
			t.Error("expected badge outside the catalog dropped")
		}
		if b.ID == "poupador" && (!b.Unlocked || b.Name != "Poupador") {
			t.Errorf("expected catalog badge with stored unlock, got %+v", b)
		}
		if b.ID == "mestre" && b.Unlocked {
			t.Error("expected missing badge restored locked")
		}
	}
	if !u.Balance.IsZero() {
		t.Errorf("expected default balance, got %s", u.Balance)
	}
}

func TestLoad_RollsOverStoredXP(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	store.data[valueobject.DefaultNamespace.Key(valueobject.SliceUser)] = []byte(`{
		"name": "Ana", "level": 1, "xp": 250, "xpToNextLevel": 100
	}`)

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	u := e.User()
	if u.Level != 3 || u.XP != 0 || u.XPToNextLevel != LevelCurve(3) {
		t.Errorf("expected level 3 with 0/%d xp, got level %d with %d/%d", LevelCurve(3), u.Level, u.XP, u.XPToNextLevel)
	}
	if len(e.Community()) != len(seedCommunity(testStart)) {
		t.Errorf("expected no feed posts from reconciliation, got %d", len(e.Community()))
	}
}

func TestLoad_ReconcilesMissions(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	store.data[valueobject.DefaultNamespace.Key(valueobject.SliceMissions)] = []byte(`[
		{"id": "d1", "status": "completed", "type": "daily", "completedAt": "2025-03-10T08:00:00Z"},
		{"id": "p1", "status": "completed", "type": "path"},
		{"id": "p2", "status": "locked", "type": "path"},
		{"id": "p3", "status": "available", "type": "path"},
		{"id": "m9", "status": "available", "type": "daily"}
	]`)

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	want := map[string]entity.MissionStatus{
		"d1": entity.MissionStatusCompleted,
		"d3": entity.MissionStatusAvailable,
		"p1": entity.MissionStatusCompleted,
		"p2": entity.MissionStatusAvailable,
		"p3": entity.MissionStatusLocked,
	}
	for id, status := range want {
		if got := missionStatus(e, id); got != status {
			t.Errorf("expected %s %s, got %s", id, status, got)
		}
	}
	if missionStatus(e, "m9") != "" {
		t.Error("expected mission outside the catalog dropped")
	}
}

func TestLoad_MergesProgressAndRunsRollover(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	ns := valueobject.DefaultNamespace
	store.data[ns.Key(valueobject.SliceProgress)] = []byte(`{
		"totalXP": 600, "highestStreak": 4, "lastActivityDate": "2025-03-05T10:00:00Z",
		"lastDailyReset": "2025-03-09"
	}`)
	store.data[ns.Key(valueobject.SliceUser)] = []byte(`{"streak": 4}`)
	store.data[ns.Key(valueobject.SliceMissions)] = []byte(`[{"id": "d1", "status": "completed", "type": "daily"}]`)

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	p := e.Progress()
	if p.TotalXP != 600 || p.HighestStreak != 4 {
		t.Errorf("expected stored counters kept, got %+v", p)
	}
	if !p.LastDailyReset.Equal(valueobject.NewCalendarDay(2025, time.March, 10)) {
		t.Errorf("expected daily sweep at load, got %s", p.LastDailyReset)
	}
	if missionStatus(e, "d1") != entity.MissionStatusAvailable {
		t.Error("expected d1 reopened at load")
	}
	if e.User().Streak != 0 {
		t.Error("expected streak broken at load")
	}
	if e.League().Name != "Prata" {
		t.Errorf("expected Prata, got %s", e.League().Name)
	}
}

func TestLoad_CapsFeed(t *testing.T) {
	store := newMemStore()
	clock := &testClock{now: testStart}
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 30; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"id":"p%d","userName":"x","action":"a","likes":0,"reactionType":"clap"}`, i)
	}
	b.WriteString("]")
	store.data[valueobject.DefaultNamespace.Key(valueobject.SliceCommunity)] = []byte(b.String())

	e := New(store, clock, Options{Location: time.UTC})
	e.Load(context.Background())

	if got := len(e.Community()); got != FeedLimit {
		t.Errorf("expected %d posts, got %d", FeedLimit, got)
	}
}

func TestReset(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()
	ns := valueobject.DefaultNamespace
	store.data[ns.Key(valueobject.SliceProfile)] = []byte(`{"username":"@keep"}`)

	mustAdd(t, e, income(100))
	if err := e.Reset(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range valueobject.EngineSlices {
		if _, ok := store.data[ns.Key(s)]; ok {
			t.Errorf("expected slice %s deleted", s)
		}
	}
	if _, ok := store.data[ns.Key(valueobject.SliceProfile)]; !ok {
		t.Error("expected profile kept")
	}
	if len(e.Transactions(TransactionFilter{})) != 0 || !e.User().Balance.IsZero() || e.Progress().TotalXP != 0 {
		t.Error("expected defaults in memory after reset")
	}
}

func TestSaveFailureIsNotSurfaced(t *testing.T) {
	e, store, _ := newTestEngine(t)
	store.failSet = true

	res, err := e.AddTransaction(context.Background(), expense(10))
	if err != nil {
		t.Fatalf("expected write failure to be swallowed, got %v", err)
	}
	if res.Transaction.ID == uuid.Nil {
		t.Error("expected transaction registered in memory")
	}
	if !e.User().Balance.Equal(decimal.NewFromInt(-10)) {
		t.Error("expected in-memory state updated")
	}
}

func TestNamespace(t *testing.T) {
	store := newMemStore()
	e := New(store, &testClock{now: testStart}, Options{Namespace: "test_", Location: time.UTC})
	e.Load(context.Background())

	if _, ok := store.data["test_user"]; !ok {
		t.Error("expected keys under the configured namespace")
	}
	if _, ok := store.data["contacomigo_user"]; ok {
		t.Error("expected default namespace untouched")
	}
}
