package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum length of a transaction description, in characters.
const MaxDescriptionLength = 255

// TransactionInput is a transaction to register. A zero Date means today
// and an empty Category means entity.DefaultCategory.
type TransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        valueobject.CalendarDay
}

// AddTransactionResult reports the effects of a registered transaction.
type AddTransactionResult struct {
	Transaction      entity.Transaction
	XPAwarded        int
	CompletedMission string
	Events           []entity.FeedEvent
}

func validateTransaction(in *TransactionInput) error {
	if !in.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !in.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	in.Description = strings.TrimSpace(in.Description)
	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description must be at most 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}

	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		in.Category = entity.DefaultCategory
	}
	if !isKnownCategory(in.Type, in.Category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return nil
}

// AddTransaction registers a transaction. Validation failures return a
// *TransactionError and leave state untouched. Otherwise balance, lifetime
// totals, counters, XP, streak, the matching daily mission and badges are
// all updated together.
func (e *Engine) AddTransaction(ctx context.Context, in TransactionInput) (*AddTransactionResult, error) {
	if err := validateTransaction(&in); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(true)
	date := in.Date
	if date.IsZero() {
		date = m.today
	}

	t := entity.NewTransaction(in.Type, in.Amount, in.Description, in.Category, date, m.now)
	e.st.transactions = append([]entity.Transaction{*t}, e.st.transactions...)
	e.st.user.Apply(t)
	e.st.progress.TotalTransactions++
	m.touch(valueobject.SliceTransactions, valueobject.SliceUser, valueobject.SliceProgress)

	res := &AddTransactionResult{Transaction: *t, XPAwarded: XPRegisterTransaction}
	e.addXP(m, XPRegisterTransaction)
	e.recordActivity(m)

	missionID := MissionRegisterExpense
	if t.Type == entity.TransactionTypeIncome {
		missionID = MissionRegisterIncome
	}
	if xp, ok := e.completeMission(m, missionID); ok {
		res.CompletedMission = missionID
		res.XPAwarded += xp
	}

	e.evaluateBadges(m)
	e.commit(ctx, m)
	e.recorder.TransactionRecorded(t.Type)

	res.Events = m.events
	return res, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the
// balance and lifetime totals. XP, counters and missions are kept.
// It reports false when no transaction has the given id.
func (e *Engine) DeleteTransaction(ctx context.Context, id uuid.UUID) (bool, []entity.FeedEvent) {
	if id == uuid.Nil {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i := range e.st.transactions {
		if e.st.transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	m := e.begin(true)
	t := e.st.transactions[idx]
	e.st.transactions = append(e.st.transactions[:idx:idx], e.st.transactions[idx+1:]...)
	e.st.user.Revert(&t)
	m.touch(valueobject.SliceTransactions, valueobject.SliceUser)

	e.evaluateBadges(m)
	e.commit(ctx, m)
	return true, m.events
}
