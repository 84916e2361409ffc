// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known kinds.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// DefaultCategory is used when a transaction is registered without one.
const DefaultCategory = "outros"

// Transaction is an immutable ledger record. Amount is always positive;
// the sign is carried by Type.
type Transaction struct {
	ID          uuid.UUID               `json:"id"`
	Type        TransactionType         `json:"type"`
	Amount      decimal.Decimal         `json:"amount"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	Date        valueobject.CalendarDay `json:"date"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	category string,
	date valueobject.CalendarDay,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   createdAt,
	}
}

// SignedAmount returns the effect of the transaction on a balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
