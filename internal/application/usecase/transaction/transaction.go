// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID          uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        valueobject.CalendarDay
	CreatedAt   time.Time
}

func toOutput(t entity.Transaction) TransactionOutput {
	return TransactionOutput{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}
