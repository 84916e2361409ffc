package transaction

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/milestone"
	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        valueobject.CalendarDay
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction      TransactionOutput
	XPAwarded        int
	CompletedMission string
	Events           []entity.FeedEvent
	User             *entity.User
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	engine     *engine.Engine
	dispatcher *milestone.Dispatcher
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(eng *engine.Engine, dispatcher *milestone.Dispatcher) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		engine:     eng,
		dispatcher: dispatcher,
	}
}

// Execute registers the transaction and forwards the resulting milestones.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	res, err := uc.engine.AddTransaction(ctx, engine.TransactionInput{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
	})
	if err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, res.Events)

	return &CreateTransactionOutput{
		Transaction:      toOutput(res.Transaction),
		XPAwarded:        res.XPAwarded,
		CompletedMission: res.CompletedMission,
		Events:           res.Events,
		User:             uc.engine.User(),
	}, nil
}
