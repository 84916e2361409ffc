package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 50

// TransactionFilter narrows a transaction listing. Zero values mean no filter.
type TransactionFilter struct {
	Type  entity.TransactionType
	Limit int
}

// Transactions returns transactions newest first.
func (e *Engine) Transactions(filter TransactionFilter) []entity.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entity.Transaction, 0, len(e.st.transactions))
	for _, t := range e.st.transactions {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		out = append(out, t)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// User returns a copy of the user aggregate.
func (e *Engine) User() *entity.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.user.Clone()
}

// Missions returns a copy of the missions, in catalog order.
func (e *Engine) Missions() []entity.Mission {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entity.Mission, len(e.st.missions))
	copy(out, e.st.missions)
	return out
}

// Community returns the feed, newest first.
func (e *Engine) Community() []entity.CommunityPost {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entity.CommunityPost, len(e.st.community))
	copy(out, e.st.community)
	return out
}

// Progress returns a copy of the lifetime counters.
func (e *Engine) Progress() entity.UserProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.st.progress
}

// Settings returns a copy of the settings.
func (e *Engine) Settings() entity.AppSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.st.settings
}

// League returns the league of the current lifetime XP.
func (e *Engine) League() valueobject.League {
	e.mu.Lock()
	defer e.mu.Unlock()
	return valueobject.LeagueFor(e.leagues, e.st.progress.TotalXP)
}

// Today returns the current calendar day in the engine's time zone.
func (e *Engine) Today() valueobject.CalendarDay {
	return valueobject.DayOf(e.now(), e.loc)
}

// State is a point-in-time copy of every slice.
type State struct {
	Transactions []entity.Transaction   `json:"transactions"`
	User         *entity.User           `json:"user"`
	Missions     []entity.Mission       `json:"missions"`
	Community    []entity.CommunityPost `json:"community"`
	Progress     entity.UserProgress    `json:"progress"`
	Settings     entity.AppSettings     `json:"settings"`
}

// State returns a consistent copy of all slices.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	s := State{
		Transactions: make([]entity.Transaction, len(e.st.transactions)),
		User:         e.st.user.Clone(),
		Missions:     make([]entity.Mission, len(e.st.missions)),
		Community:    make([]entity.CommunityPost, len(e.st.community)),
		Progress:     *e.st.progress,
		Settings:     *e.st.settings,
	}
	copy(s.Transactions, e.st.transactions)
	copy(s.Missions, e.st.missions)
	copy(s.Community, e.st.community)
	return s
}

// UpdateUserName changes the name shown in the feed.
func (e *Engine) UpdateUserName(ctx context.Context, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidName,
			"name must be between 1 and 50 characters",
			domainerror.ErrInvalidName,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(false)
	e.st.user.Name = name
	m.touch(valueobject.SliceUser)
	e.commit(ctx, m)
	return e.st.user.Clone(), nil
}

// SettingsUpdate holds the toggles to change. Nil fields are left as is.
type SettingsUpdate struct {
	Notifications *bool
	DarkMode      *bool
}

// UpdateSettings applies a partial settings update.
func (e *Engine) UpdateSettings(ctx context.Context, upd SettingsUpdate) entity.AppSettings {
	e.mu.Lock()
	defer e.mu.Unlock()

	if upd.Notifications != nil {
		e.st.settings.Notifications = *upd.Notifications
	}
	if upd.DarkMode != nil {
		e.st.settings.DarkMode = *upd.DarkMode
	}
	m := e.begin(false)
	m.touch(valueobject.SliceSettings)
	e.commit(ctx, m)
	return *e.st.settings
}
