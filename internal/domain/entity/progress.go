package entity

import (
	"time"

	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// UserProgress holds lifetime counters. All of them are monotonic;
// only User.Streak is ever reset, never HighestStreak.
type UserProgress struct {
	TotalXP           int                     `json:"totalXP"`
	HighestStreak     int                     `json:"highestStreak"`
	TotalTransactions int                     `json:"totalTransactions"`
	CompletedMissions int                     `json:"completedMissions"`
	FirstAccessDate   time.Time               `json:"firstAccessDate"`
	LastActivityDate  *time.Time              `json:"lastActivityDate,omitempty"`
	LastDailyReset    valueobject.CalendarDay `json:"lastDailyReset"`
	ConsciousDays     int                     `json:"consciousDays"`
}

// NewUserProgress returns the counters of a first run started at now.
func NewUserProgress(now time.Time, today valueobject.CalendarDay) *UserProgress {
	return &UserProgress{
		FirstAccessDate: now,
		LastDailyReset:  today,
	}
}

// AppSettings holds user toggles.
type AppSettings struct {
	Notifications bool `json:"notifications"`
	DarkMode      bool `json:"darkMode"`
}

// NewAppSettings returns the default settings.
func NewAppSettings() *AppSettings {
	return &AppSettings{
		Notifications: true,
		DarkMode:      false,
	}
}
