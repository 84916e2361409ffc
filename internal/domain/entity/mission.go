package entity

import "time"

// MissionStatus is the state of a mission.
type MissionStatus string

const (
	MissionStatusAvailable MissionStatus = "available"
	MissionStatusCompleted MissionStatus = "completed"
	MissionStatusLocked    MissionStatus = "locked"
)

// MissionType distinguishes recurring daily missions from the one-time path chain.
type MissionType string

const (
	MissionTypeDaily MissionType = "daily"
	MissionTypePath  MissionType = "path"
)

// Mission is a task the user completes for XP.
//
// Daily missions cycle available -> completed -> available (next day).
// Path missions form a chain: completing one makes the next available.
type Mission struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	XP          int           `json:"xp"`
	Status      MissionStatus `json:"status"`
	Type        MissionType   `json:"type"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// IsAvailable reports whether the mission can be completed now.
func (m *Mission) IsAvailable() bool {
	return m.Status == MissionStatusAvailable
}

// Complete marks the mission completed at the given time.
func (m *Mission) Complete(at time.Time) {
	m.Status = MissionStatusCompleted
	completedAt := at
	m.CompletedAt = &completedAt
}

// Reopen puts a daily mission back to available.
func (m *Mission) Reopen() {
	m.Status = MissionStatusAvailable
	m.CompletedAt = nil
}
