package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/milestone"
	"github.com/contacomigo/backend/internal/application/usecase/usecasetest"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

func TestCreateTransactionUseCase(t *testing.T) {
	eng := usecasetest.NewEngine(t)
	uc := NewCreateTransactionUseCase(eng, milestone.NewDispatcher(eng, nil, ""))

	out, err := uc.Execute(context.Background(), CreateTransactionInput{
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(50),
		Description: "Almoço",
		Category:    "alimentacao",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.XPAwarded != engine.XPRegisterTransaction+engine.XPDailyMission {
		t.Errorf("expected %d xp, got %d", engine.XPRegisterTransaction+engine.XPDailyMission, out.XPAwarded)
	}
	if out.CompletedMission != engine.MissionRegisterExpense {
		t.Errorf("expected mission %s, got %s", engine.MissionRegisterExpense, out.CompletedMission)
	}
	if !out.User.Balance.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected balance -50, got %s", out.User.Balance)
	}
	if out.Transaction.ID == uuid.Nil {
		t.Error("expected transaction id to be set")
	}
}

func TestCreateTransactionUseCase_Invalid(t *testing.T) {
	eng := usecasetest.NewEngine(t)
	uc := NewCreateTransactionUseCase(eng, nil)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		Type:   entity.TransactionTypeIncome,
		Amount: decimal.Zero,
	})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected TransactionError, got %v", err)
	}
	if txnErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTransactionAmount, txnErr.Code)
	}
	if len(eng.Transactions(engine.TransactionFilter{})) != 0 {
		t.Error("expected no transaction to be stored")
	}
}

func TestDeleteAndListTransactions(t *testing.T) {
	eng := usecasetest.NewEngine(t)
	create := NewCreateTransactionUseCase(eng, nil)
	list := NewListTransactionsUseCase(eng)
	del := NewDeleteTransactionUseCase(eng, nil)
	ctx := context.Background()

	first, err := create.Execute(ctx, CreateTransactionInput{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Category: "salario"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := create.Execute(ctx, CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(30), Category: "lazer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := list.Execute(ctx, ListTransactionsInput{})
	if all.Total != 2 {
		t.Fatalf("expected 2 transactions, got %d", all.Total)
	}
	incomes, _ := list.Execute(ctx, ListTransactionsInput{Type: entity.TransactionTypeIncome})
	if incomes.Total != 1 || incomes.Transactions[0].ID != first.Transaction.ID {
		t.Errorf("expected only the income, got %+v", incomes.Transactions)
	}

	out, _ := del.Execute(ctx, DeleteTransactionInput{TransactionID: first.Transaction.ID.String()})
	if !out.Deleted {
		t.Error("expected deletion")
	}
	if !out.User.Balance.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected balance -30, got %s", out.User.Balance)
	}

	again, _ := del.Execute(ctx, DeleteTransactionInput{TransactionID: first.Transaction.ID.String()})
	if again.Deleted {
		t.Error("expected second deletion to be a no-op")
	}
}

func TestDeleteTransactionUseCase_MalformedID(t *testing.T) {
	eng := usecasetest.NewEngine(t)
	create := NewCreateTransactionUseCase(eng, nil)
	del := NewDeleteTransactionUseCase(eng, nil)
	ctx := context.Background()

	if _, err := create.Execute(ctx, CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(20), Category: "lazer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"", "not-a-uuid", uuid.Nil.String()} {
		out, err := del.Execute(ctx, DeleteTransactionInput{TransactionID: id})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", id, err)
		}
		if out.Deleted {
			t.Errorf("%q: expected no deletion", id)
		}
		if out.User == nil || !out.User.Balance.Equal(decimal.NewFromInt(-20)) {
			t.Errorf("%q: expected user snapshot with balance -20, got %+v", id, out.User)
		}
	}
}
