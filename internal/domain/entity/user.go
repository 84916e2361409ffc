// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// User is the progression aggregate of the single local player.
type User struct {
	Name          string          `json:"name"`
	Level         int             `json:"level"`
	XP            int             `json:"xp"`
	XPToNextLevel int             `json:"xpToNextLevel"`
	Streak        int             `json:"streak"`
	Balance       decimal.Decimal `json:"balance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Badges        []Badge         `json:"badges"`
}

// NewUser creates a level 1 user holding a copy of the given badge catalog.
func NewUser(name string, xpToNextLevel int, badges []Badge) *User {
	owned := make([]Badge, len(badges))
	copy(owned, badges)
	return &User{
		Name:          name,
		Level:         1,
		XP:            0,
		XPToNextLevel: xpToNextLevel,
		Streak:        0,
		Balance:       decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Badges:        owned,
	}
}

// Apply adds the effect of a transaction to the balance and lifetime totals.
func (u *User) Apply(t *Transaction) {
	switch t.Type {
	case TransactionTypeIncome:
		u.Balance = u.Balance.Add(t.Amount)
		u.TotalIncome = u.TotalIncome.Add(t.Amount)
	case TransactionTypeExpense:
		u.Balance = u.Balance.Sub(t.Amount)
		u.TotalExpenses = u.TotalExpenses.Add(t.Amount)
	}
}

// Revert removes the effect of a transaction; the exact inverse of Apply.
func (u *User) Revert(t *Transaction) {
	switch t.Type {
	case TransactionTypeIncome:
		u.Balance = u.Balance.Sub(t.Amount)
		u.TotalIncome = u.TotalIncome.Sub(t.Amount)
	case TransactionTypeExpense:
		u.Balance = u.Balance.Add(t.Amount)
		u.TotalExpenses = u.TotalExpenses.Sub(t.Amount)
	}
}

// UnlockedBadges returns the number of unlocked badges.
func (u *User) UnlockedBadges() int {
	count := 0
	for _, b := range u.Badges {
		if b.Unlocked {
			count++
		}
	}
	return count
}

// Clone returns a deep copy safe to hand out of the engine.
func (u *User) Clone() *User {
	c := *u
	c.Badges = make([]Badge, len(u.Badges))
	copy(c.Badges, u.Badges)
	return &c
}
