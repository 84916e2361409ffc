package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/milestone"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	// TransactionID is the raw path id.
	TransactionID string
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Deleted bool
	User    *entity.User
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	engine     *engine.Engine
	dispatcher *milestone.Dispatcher
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(eng *engine.Engine, dispatcher *milestone.Dispatcher) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		engine:     eng,
		dispatcher: dispatcher,
	}
}

// Execute removes the transaction. Malformed and unknown ids report
// Deleted false and leave the ledger untouched.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	id, err := uuid.Parse(input.TransactionID)
	if err != nil || id == uuid.Nil {
		return &DeleteTransactionOutput{Deleted: false, User: uc.engine.User()}, nil
	}

	deleted, events := uc.engine.DeleteTransaction(ctx, id)
	uc.dispatcher.Dispatch(ctx, events)

	return &DeleteTransactionOutput{
		Deleted: deleted,
		User:    uc.engine.User(),
	}, nil
}
