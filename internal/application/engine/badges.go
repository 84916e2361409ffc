package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// Snapshot is the aggregate state badge predicates are evaluated against.
type Snapshot struct {
	Balance           decimal.Decimal
	Streak            int
	Level             int
	TotalTransactions int
	CompletedMissions int
	ConsciousDays     int
}

// BadgeRule unlocks badges whose Condition matches when Holds is true.
type BadgeRule struct {
	Condition string
	Holds     func(Snapshot) bool
}

var balanceThreshold = decimal.NewFromInt(1000)

// BadgeRules is the declarative unlock table.
var BadgeRules = []BadgeRule{
	{Condition: ConditionFirstTransaction, Holds: func(s Snapshot) bool { return s.TotalTransactions >= 1 }},
	{Condition: ConditionStreak7, Holds: func(s Snapshot) bool { return s.Streak >= 7 }},
	{Condition: ConditionBalance1000, Holds: func(s Snapshot) bool { return s.Balance.GreaterThanOrEqual(balanceThreshold) }},
	{Condition: ConditionTransactions50, Holds: func(s Snapshot) bool { return s.TotalTransactions >= 50 }},
	{Condition: ConditionMissions10, Holds: func(s Snapshot) bool { return s.CompletedMissions >= 10 }},
	{Condition: ConditionLevel20, Holds: func(s Snapshot) bool { return s.Level >= 20 }},
	{Condition: ConditionConsciousDays30, Holds: func(s Snapshot) bool { return s.ConsciousDays >= 30 }},
}

func ruleFor(condition string) (BadgeRule, bool) {
	for _, r := range BadgeRules {
		if r.Condition == condition {
			return r, true
		}
	}
	return BadgeRule{}, false
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Balance:           e.st.user.Balance,
		Streak:            e.st.user.Streak,
		Level:             e.st.user.Level,
		TotalTransactions: e.st.progress.TotalTransactions,
		CompletedMissions: e.st.progress.CompletedMissions,
		ConsciousDays:     e.st.progress.ConsciousDays,
	}
}

// evaluateBadges unlocks every locked badge whose rule now holds.
// Unlocked badges are never re-locked.
func (e *Engine) evaluateBadges(m *mutation) {
	snap := e.snapshot()
	badges := e.st.user.Badges
	for i := range badges {
		if badges[i].Unlocked {
			continue
		}
		rule, ok := ruleFor(badges[i].Condition)
		if !ok || !rule.Holds(snap) {
			continue
		}
		badges[i].Unlocked = true
		m.touch(valueobject.SliceUser)
		e.recorder.BadgeUnlocked(badges[i].ID)
		e.post(m, entity.FeedEvent{
			Kind:      entity.FeedEventBadgeUnlocked,
			Message:   fmt.Sprintf("desbloqueou o badge %s!", badges[i].Name),
			BadgeID:   badges[i].ID,
			BadgeName: badges[i].Name,
		})
	}
}
