package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a decimal string. An empty date means today.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction      TransactionResponse `json:"transaction"`
	XPAwarded        int                 `json:"xp_awarded"`
	CompletedMission string              `json:"completed_mission,omitempty"`
	User             UserResponse        `json:"user"`
}

// DeleteTransactionResponse represents the response for transaction deletion.
type DeleteTransactionResponse struct {
	Changed bool         `json:"changed"`
	User    UserResponse `json:"user"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(t transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.StringFixed(2),
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date.String(),
		CreatedAt:   t.CreatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        output.Total,
	}
}

// ToCreateTransactionResponse converts a CreateTransactionOutput to its DTO.
func ToCreateTransactionResponse(output *transaction.CreateTransactionOutput) CreateTransactionResponse {
	return CreateTransactionResponse{
		Transaction:      ToTransactionResponse(output.Transaction),
		XPAwarded:        output.XPAwarded,
		CompletedMission: output.CompletedMission,
		User:             ToUserResponse(output.User),
	}
}
