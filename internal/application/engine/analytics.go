package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// MonthlyTotals are the income and expense sums of the current calendar month.
type MonthlyTotals struct {
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	ExpenseCount int
}

// Savings returns income minus expenses.
func (t MonthlyTotals) Savings() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

// SavingsRate returns savings as a whole percentage of income, 0 without income.
func (t MonthlyTotals) SavingsRate() int {
	if !t.Income.IsPositive() {
		return 0
	}
	return int(t.Savings().Div(t.Income).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// MonthlyTotalsOf sums transactions dated on or after the first day of today's month.
func MonthlyTotalsOf(transactions []entity.Transaction, today valueobject.CalendarDay) MonthlyTotals {
	first := today.FirstOfMonth()
	totals := MonthlyTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		if t.Date.Before(first) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
			totals.ExpenseCount++
		}
	}
	return totals
}

var weekdayLabels = [7]string{"DOM", "SEG", "TER", "QUA", "QUI", "SEX", "SAB"}

// DayExpense is one point of the weekly expense series.
type DayExpense struct {
	Day    valueobject.CalendarDay
	Label  string
	Amount decimal.Decimal
}

// WeeklyExpenses returns the expense sum of each of the trailing seven days,
// oldest first. Days without expenses yield zero.
func WeeklyExpenses(transactions []entity.Transaction, today valueobject.CalendarDay) []DayExpense {
	series := make([]DayExpense, 7)
	for i := range series {
		day := today.AddDays(i - 6)
		series[i] = DayExpense{Day: day, Label: weekdayLabels[day.Weekday()], Amount: decimal.Zero}
	}
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		offset := t.Date.DaysUntil(today)
		if offset < 0 || offset > 6 {
			continue
		}
		i := 6 - offset
		series[i].Amount = series[i].Amount.Add(t.Amount)
	}
	return series
}

// HabitPolicy holds the tunable constants of the habit-health scores.
type HabitPolicy struct {
	// NeutralScore is returned when a score has no data to work with.
	NeutralScore float64
	// AdherenceBonus shifts budget adherence so spending all income scores this value.
	AdherenceBonus float64
	// TargetSavingsRate is the savings rate that scores 100.
	TargetSavingsRate float64
	// ExpectedDailyExpenses is the expense count per conscious day tolerated without penalty.
	ExpectedDailyExpenses float64
	// ImpulsePenalty is subtracted per expense above the expected daily count.
	ImpulsePenalty float64
}

// DefaultHabitPolicy returns the default scoring constants.
func DefaultHabitPolicy() HabitPolicy {
	return HabitPolicy{
		NeutralScore:          50,
		AdherenceBonus:        50,
		TargetSavingsRate:     0.2,
		ExpectedDailyExpenses: 2,
		ImpulsePenalty:        20,
	}
}

// HabitInput is what the habit scores are derived from.
type HabitInput struct {
	Today         valueobject.CalendarDay
	Monthly       MonthlyTotals
	ConsciousDays int
}

// HabitScores are the four habit-health scores, each in [0, 100].
type HabitScores struct {
	Consistency     int
	BudgetAdherence int
	SavingsGoal     int
	ImpulseControl  int
}

// Score computes the habit scores. Every score stays in [0, 100] and falls
// back to the neutral score when income or conscious days is zero.
func (p HabitPolicy) Score(in HabitInput) HabitScores {
	neutral := p.clamp(p.NeutralScore)
	scores := HabitScores{
		Consistency:     neutral,
		BudgetAdherence: neutral,
		SavingsGoal:     neutral,
		ImpulseControl:  neutral,
	}

	if in.ConsciousDays > 0 {
		days := float64(in.ConsciousDays)
		scores.Consistency = p.clamp(days / float64(in.Today.DaysInMonth()) * 100)

		perDay := float64(in.Monthly.ExpenseCount) / days
		scores.ImpulseControl = p.clamp(100 - math.Max(0, perDay-p.ExpectedDailyExpenses)*p.ImpulsePenalty)
	}

	if in.Monthly.Income.IsPositive() {
		income := in.Monthly.Income.InexactFloat64()
		expenses := in.Monthly.Expenses.InexactFloat64()

		scores.BudgetAdherence = p.clamp((1-expenses/income)*100 + p.AdherenceBonus)
		if p.TargetSavingsRate > 0 {
			rate := (income - expenses) / income
			scores.SavingsGoal = p.clamp(rate / p.TargetSavingsRate * 100)
		}
	}
	return scores
}

func (p HabitPolicy) clamp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = p.NeutralScore
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 50
		}
	}
	return int(math.Round(math.Min(100, math.Max(0, v))))
}

// Ranking is the simulated community position derived from lifetime XP.
func Ranking(totalXP int) int {
	r := 100 - totalXP/100
	if r < 1 {
		return 1
	}
	if r > 100 {
		return 100
	}
	return r
}

// LevelProgress returns the percentage of the current level already earned.
func LevelProgress(u *entity.User) int {
	if u.XPToNextLevel <= 0 {
		return 0
	}
	return u.XP * 100 / u.XPToNextLevel
}

// Dashboard is the aggregate shown on the home screen.
type Dashboard struct {
	User               *entity.User
	Progress           entity.UserProgress
	League             valueobject.League
	NextLeague         *valueobject.League
	LevelProgress      int
	Monthly            MonthlyTotals
	Weekly             []DayExpense
	Habits             HabitScores
	Ranking            int
	RecentTransactions []entity.Transaction
	Today              valueobject.CalendarDay
}

// recentTransactionCount is the number of transactions on the dashboard.
const recentTransactionCount = 5

// Dashboard recomputes the derived analytics from the current state.
func (e *Engine) Dashboard(policy HabitPolicy) Dashboard {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := valueobject.DayOf(e.now(), e.loc)
	monthly := MonthlyTotalsOf(e.st.transactions, today)
	league := valueobject.LeagueFor(e.leagues, e.st.progress.TotalXP)

	d := Dashboard{
		User:          e.st.user.Clone(),
		Progress:      *e.st.progress,
		League:        league,
		LevelProgress: LevelProgress(e.st.user),
		Monthly:       monthly,
		Weekly:        WeeklyExpenses(e.st.transactions, today),
		Habits: policy.Score(HabitInput{
			Today:         today,
			Monthly:       monthly,
			ConsciousDays: e.st.progress.ConsciousDays,
		}),
		Ranking: Ranking(e.st.progress.TotalXP),
		Today:   today,
	}
	if next, ok := valueobject.NextLeague(e.leagues, league); ok {
		d.NextLeague = &next
	}

	n := len(e.st.transactions)
	if n > recentTransactionCount {
		n = recentTransactionCount
	}
	d.RecentTransactions = make([]entity.Transaction, n)
	copy(d.RecentTransactions, e.st.transactions[:n])
	return d
}
