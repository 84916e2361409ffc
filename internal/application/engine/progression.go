package engine

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// AddXP awards experience points and returns the feed events it produced.
// Non-positive amounts are ignored.
func (e *Engine) AddXP(ctx context.Context, amount int) []entity.FeedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(true)
	e.addXP(m, amount)
	e.evaluateBadges(m)
	e.commit(ctx, m)
	return m.events
}

// RecordActivity marks the current day as active.
func (e *Engine) RecordActivity(ctx context.Context) []entity.FeedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(true)
	e.recordActivity(m)
	e.evaluateBadges(m)
	e.commit(ctx, m)
	return m.events
}

// CheckStreak resets the streak when at least one full day was skipped.
func (e *Engine) CheckStreak(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(false)
	broken := e.checkStreak(m)
	e.commit(ctx, m)
	return broken
}

// addXP rolls xp over as many levels as the amount covers.
func (e *Engine) addXP(m *mutation, amount int) {
	if amount <= 0 {
		return
	}
	u := e.st.user
	if u.XPToNextLevel <= 0 {
		u.XPToNextLevel = LevelCurve(u.Level)
	}

	u.XP += amount
	for u.XP >= u.XPToNextLevel {
		u.XP -= u.XPToNextLevel
		u.Level++
		u.XPToNextLevel = LevelCurve(u.Level)

		e.recorder.LevelReached(u.Level)
		e.post(m, entity.FeedEvent{
			Kind:    entity.FeedEventLevelUp,
			Message: fmt.Sprintf("subiu para o nível %d!", u.Level),
			Level:   u.Level,
		})
	}

	e.st.progress.TotalXP += amount
	e.recorder.XPAwarded(amount)
	m.touch(valueobject.SliceUser, valueobject.SliceProgress)
}

// recordActivity extends the streak at most once per calendar day.
func (e *Engine) recordActivity(m *mutation) {
	p := e.st.progress
	u := e.st.user

	if p.LastActivityDate == nil || !valueobject.DayOf(*p.LastActivityDate, e.loc).Equal(m.today) {
		p.ConsciousDays++
		u.Streak++
		if u.Streak > p.HighestStreak {
			p.HighestStreak = u.Streak
		}
		m.touch(valueobject.SliceUser)

		if u.Streak%7 == 0 {
			e.post(m, entity.FeedEvent{
				Kind:    entity.FeedEventStreakMilestone,
				Message: fmt.Sprintf("mantém uma streak de %d dias!", u.Streak),
				Streak:  u.Streak,
			})
		}
	}

	at := m.now
	p.LastActivityDate = &at
	m.touch(valueobject.SliceProgress)
}

// checkStreak zeroes the streak when the gap since the last activity
// exceeds one calendar day. HighestStreak is never touched.
func (e *Engine) checkStreak(m *mutation) bool {
	p := e.st.progress
	if p.LastActivityDate == nil || e.st.user.Streak == 0 {
		return false
	}
	last := valueobject.DayOf(*p.LastActivityDate, e.loc)
	if last.DaysUntil(m.today) <= 1 {
		return false
	}
	e.st.user.Streak = 0
	m.touch(valueobject.SliceUser)
	return true
}
