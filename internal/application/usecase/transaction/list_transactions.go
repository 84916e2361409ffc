package transaction

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Type  entity.TransactionType
	Limit int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []TransactionOutput
	Total        int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	engine *engine.Engine
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(eng *engine.Engine) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{engine: eng}
}

// Execute lists transactions newest first.
func (uc *ListTransactionsUseCase) Execute(_ context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	txs := uc.engine.Transactions(engine.TransactionFilter{Type: input.Type, Limit: input.Limit})

	out := &ListTransactionsOutput{
		Transactions: make([]TransactionOutput, 0, len(txs)),
		Total:        len(txs),
	}
	for _, t := range txs {
		out.Transactions = append(out.Transactions, toOutput(t))
	}
	return out, nil
}
