package dto

import (
	"time"

	"github.com/contacomigo/backend/internal/application/usecase/progress"
	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// UpdateNameRequest represents the request body for renaming the user.
type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// BadgeResponse represents a badge in API responses.
type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	Unlocked    bool   `json:"unlocked"`
}

// UserResponse represents the progression aggregate in API responses.
type UserResponse struct {
	Name          string          `json:"name"`
	Level         int             `json:"level"`
	XP            int             `json:"xp"`
	XPToNextLevel int             `json:"xp_to_next_level"`
	Streak        int             `json:"streak"`
	Balance       string          `json:"balance"`
	TotalIncome   string          `json:"total_income"`
	TotalExpenses string          `json:"total_expenses"`
	Badges        []BadgeResponse `json:"badges"`
}

// ProgressResponse represents the lifetime counters in API responses.
type ProgressResponse struct {
	TotalXP           int        `json:"total_xp"`
	HighestStreak     int        `json:"highest_streak"`
	TotalTransactions int        `json:"total_transactions"`
	CompletedMissions int        `json:"completed_missions"`
	ConsciousDays     int        `json:"conscious_days"`
	FirstAccessDate   time.Time  `json:"first_access_date"`
	LastActivityDate  *time.Time `json:"last_activity_date,omitempty"`
	LastDailyReset    string     `json:"last_daily_reset,omitempty"`
}

// LeagueResponse represents a league tier in API responses.
type LeagueResponse struct {
	Name  string `json:"name"`
	MinXP int    `json:"min_xp"`
}

// OverviewResponse represents the response of GET /me.
type OverviewResponse struct {
	User          UserResponse     `json:"user"`
	Progress      ProgressResponse `json:"progress"`
	League        LeagueResponse   `json:"league"`
	NextLeague    *LeagueResponse  `json:"next_league,omitempty"`
	LevelProgress int              `json:"level_progress"`
}

// ToUserResponse converts the user aggregate to its DTO.
func ToUserResponse(u *entity.User) UserResponse {
	if u == nil {
		return UserResponse{Badges: []BadgeResponse{}}
	}
	badges := make([]BadgeResponse, len(u.Badges))
	for i, b := range u.Badges {
		badges[i] = BadgeResponse{
			ID:          b.ID,
			Name:        b.Name,
			Icon:        b.Icon,
			Description: b.Description,
			Condition:   b.Condition,
			Unlocked:    b.Unlocked,
		}
	}
	return UserResponse{
		Name:          u.Name,
		Level:         u.Level,
		XP:            u.XP,
		XPToNextLevel: u.XPToNextLevel,
		Streak:        u.Streak,
		Balance:       u.Balance.StringFixed(2),
		TotalIncome:   u.TotalIncome.StringFixed(2),
		TotalExpenses: u.TotalExpenses.StringFixed(2),
		Badges:        badges,
	}
}

// ToProgressResponse converts the lifetime counters to their DTO.
func ToProgressResponse(p entity.UserProgress) ProgressResponse {
	resp := ProgressResponse{
		TotalXP:           p.TotalXP,
		HighestStreak:     p.HighestStreak,
		TotalTransactions: p.TotalTransactions,
		CompletedMissions: p.CompletedMissions,
		ConsciousDays:     p.ConsciousDays,
		FirstAccessDate:   p.FirstAccessDate,
		LastActivityDate:  p.LastActivityDate,
	}
	if !p.LastDailyReset.IsZero() {
		resp.LastDailyReset = p.LastDailyReset.String()
	}
	return resp
}

// ToLeagueResponse converts a league tier to its DTO.
func ToLeagueResponse(l valueobject.League) LeagueResponse {
	return LeagueResponse{Name: l.Name, MinXP: l.MinXP}
}

func toNextLeagueResponse(l *valueobject.League) *LeagueResponse {
	if l == nil {
		return nil
	}
	resp := ToLeagueResponse(*l)
	return &resp
}

// ToOverviewResponse converts the overview output to its DTO.
func ToOverviewResponse(output *progress.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		User:          ToUserResponse(output.User),
		Progress:      ToProgressResponse(output.Progress),
		League:        ToLeagueResponse(output.League),
		NextLeague:    toNextLeagueResponse(output.NextLeague),
		LevelProgress: output.LevelProgress,
	}
}
