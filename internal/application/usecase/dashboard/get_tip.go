package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/engine"
)

// Tip fallbacks.
const (
	TipNotConfigured = "Configure sua chave do Gemini no arquivo .env.local para receber dicas personalizadas!"
	TipDefault       = "Continue assim! Cada centavo poupado é um passo para sua liberdade financeira."
	TipOnError       = "Você está fazendo um ótimo trabalho. Mantenha o foco nas suas metas financeiras!"
)

// TipSource tells where a served tip came from.
type TipSource string

const (
	TipSourceGenerated     TipSource = "generated"
	TipSourceNotConfigured TipSource = "not_configured"
	TipSourceEmpty         TipSource = "empty"
	TipSourceError         TipSource = "error"
)

// TipObserver is told about every served tip.
type TipObserver interface {
	TipServed(source TipSource, elapsed time.Duration)
}

// GetTipOutput represents the output of the tip request.
type GetTipOutput struct {
	Tip    string
	Source TipSource
}

// GetTipUseCase fetches a personalized tip with static fallbacks.
type GetTipUseCase struct {
	engine     *engine.Engine
	tipService adapter.TipService
	timeout    time.Duration
	observer   TipObserver
}

// NewGetTipUseCase creates a new GetTipUseCase instance. The observer may be nil.
func NewGetTipUseCase(eng *engine.Engine, tipService adapter.TipService, timeout time.Duration, observer TipObserver) *GetTipUseCase {
	return &GetTipUseCase{
		engine:     eng,
		tipService: tipService,
		timeout:    timeout,
		observer:   observer,
	}
}

// Execute never fails; every failure is replaced by a fallback tip.
func (uc *GetTipUseCase) Execute(ctx context.Context) (*GetTipOutput, error) {
	started := time.Now()
	out := uc.tip(ctx)
	if uc.observer != nil {
		uc.observer.TipServed(out.Source, time.Since(started))
	}
	return out, nil
}

func (uc *GetTipUseCase) tip(ctx context.Context) *GetTipOutput {
	if uc.tipService == nil || !uc.tipService.IsAvailable() {
		return &GetTipOutput{Tip: TipNotConfigured, Source: TipSourceNotConfigured}
	}

	summary := uc.Summary()

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	text, err := uc.tipService.GenerateTip(ctx, summary)
	if err != nil {
		slog.Warn("Failed to generate tip", "error", err)
		return &GetTipOutput{Tip: TipOnError, Source: TipSourceError}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &GetTipOutput{Tip: TipDefault, Source: TipSourceEmpty}
	}
	return &GetTipOutput{Tip: text, Source: TipSourceGenerated}
}

// Summary describes the user's month in the sentence sent to the tip service.
func (uc *GetTipUseCase) Summary() string {
	user := uc.engine.User()
	monthly := engine.MonthlyTotalsOf(uc.engine.Transactions(engine.TransactionFilter{}), uc.engine.Today())

	return fmt.Sprintf("O usuario %s esta com saldo de R$ %s, nivel %d, gastou R$ %s este mes e ganhou R$ %s",
		user.Name,
		user.Balance.StringFixed(2),
		user.Level,
		monthly.Expenses.StringFixed(2),
		monthly.Income.StringFixed(2),
	)
}
