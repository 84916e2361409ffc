package dto

import (
	"github.com/contacomigo/backend/internal/application/usecase/dashboard"
	"github.com/contacomigo/backend/internal/application/usecase/settings"
)

// MonthlyResponse represents the current month totals.
type MonthlyResponse struct {
	Income       string `json:"income"`
	Expenses     string `json:"expenses"`
	Savings      string `json:"savings"`
	SavingsRate  int    `json:"savings_rate"`
	ExpenseCount int    `json:"expense_count"`
}

// DayExpenseResponse represents one point of the weekly expense chart.
type DayExpenseResponse struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// HabitsResponse represents the four habit-health scores.
type HabitsResponse struct {
	Consistency     int `json:"consistency"`
	BudgetAdherence int `json:"budget_adherence"`
	SavingsGoal     int `json:"savings_goal"`
	ImpulseControl  int `json:"impulse_control"`
}

// DashboardResponse represents the home screen aggregate.
type DashboardResponse struct {
	Today              string                `json:"today"`
	User               UserResponse          `json:"user"`
	Progress           ProgressResponse      `json:"progress"`
	League             LeagueResponse        `json:"league"`
	NextLeague         *LeagueResponse       `json:"next_league,omitempty"`
	LevelProgress      int                   `json:"level_progress"`
	Ranking            int                   `json:"ranking"`
	Monthly            MonthlyResponse       `json:"monthly"`
	Weekly             []DayExpenseResponse  `json:"weekly"`
	Habits             HabitsResponse        `json:"habits"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// TipResponse represents a financial tip.
type TipResponse struct {
	Tip    string `json:"tip"`
	Source string `json:"source"`
}

// UpdateSettingsRequest represents a partial settings update.
type UpdateSettingsRequest struct {
	Notifications *bool `json:"notifications"`
	DarkMode      *bool `json:"dark_mode"`
}

// SettingsResponse represents the app settings.
type SettingsResponse struct {
	Notifications bool `json:"notifications"`
	DarkMode      bool `json:"dark_mode"`
}

// ToDashboardResponse converts the dashboard summary to its DTO.
func ToDashboardResponse(output *dashboard.GetSummaryOutput) DashboardResponse {
	d := output.Dashboard

	weekly := make([]DayExpenseResponse, len(d.Weekly))
	for i, p := range d.Weekly {
		weekly[i] = DayExpenseResponse{
			Date:   p.Day.String(),
			Label:  p.Label,
			Amount: p.Amount.StringFixed(2),
		}
	}

	recent := make([]TransactionResponse, len(d.RecentTransactions))
	for i, t := range d.RecentTransactions {
		recent[i] = TransactionResponse{
			ID:          t.ID.String(),
			Type:        string(t.Type),
			Amount:      t.Amount.StringFixed(2),
			Description: t.Description,
			Category:    t.Category,
			Date:        t.Date.String(),
			CreatedAt:   t.CreatedAt,
		}
	}

	return DashboardResponse{
		Today:         d.Today.String(),
		User:          ToUserResponse(d.User),
		Progress:      ToProgressResponse(d.Progress),
		League:        ToLeagueResponse(d.League),
		NextLeague:    toNextLeagueResponse(d.NextLeague),
		LevelProgress: d.LevelProgress,
		Ranking:       d.Ranking,
		Monthly: MonthlyResponse{
			Income:       d.Monthly.Income.StringFixed(2),
			Expenses:     d.Monthly.Expenses.StringFixed(2),
			Savings:      d.Monthly.Savings().StringFixed(2),
			SavingsRate:  d.Monthly.SavingsRate(),
			ExpenseCount: d.Monthly.ExpenseCount,
		},
		Weekly: weekly,
		Habits: HabitsResponse{
			Consistency:     d.Habits.Consistency,
			BudgetAdherence: d.Habits.BudgetAdherence,
			SavingsGoal:     d.Habits.SavingsGoal,
			ImpulseControl:  d.Habits.ImpulseControl,
		},
		RecentTransactions: recent,
	}
}

// ToTipResponse converts a tip output to its DTO.
func ToTipResponse(output *dashboard.GetTipOutput) TipResponse {
	return TipResponse{Tip: output.Tip, Source: string(output.Source)}
}

// ToSettingsResponse converts the settings output to its DTO.
func ToSettingsResponse(output *settings.SettingsOutput) SettingsResponse {
	return SettingsResponse{
		Notifications: output.Settings.Notifications,
		DarkMode:      output.Settings.DarkMode,
	}
}
