// Package milestone forwards engine feed events to the notifier.
package milestone

import (
	"context"
	"log/slog"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// Dispatcher sends the events of a mutation to the notifier when the user
// has notifications enabled. It never fails the calling operation.
type Dispatcher struct {
	engine   *engine.Engine
	notifier adapter.MilestoneNotifier
	email    string
}

// NewDispatcher creates a new Dispatcher. A nil notifier disables dispatching.
func NewDispatcher(eng *engine.Engine, notifier adapter.MilestoneNotifier, recipientEmail string) *Dispatcher {
	return &Dispatcher{
		engine:   eng,
		notifier: notifier,
		email:    recipientEmail,
	}
}

// Dispatch forwards events. It must be called after the engine lock is released.
func (d *Dispatcher) Dispatch(ctx context.Context, events []entity.FeedEvent) {
	if d == nil || d.notifier == nil || len(events) == 0 || d.email == "" {
		return
	}
	if !d.engine.Settings().Notifications {
		slog.Debug("Notifications disabled, skipping milestones", "events", len(events))
		return
	}

	recipient := adapter.Recipient{Email: d.email, Name: d.engine.User().Name}
	if err := d.notifier.Notify(ctx, recipient, events); err != nil {
		slog.Warn("Failed to queue milestone notifications",
			"events", len(events),
			"error", err,
		)
	}
}
