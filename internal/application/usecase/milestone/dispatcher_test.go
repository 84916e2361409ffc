package milestone

import (
	"context"
	"errors"
	"testing"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/usecase/usecasetest"
	"github.com/contacomigo/backend/internal/domain/entity"
)

type recordingNotifier struct {
	calls     int
	recipient adapter.Recipient
	events    []entity.FeedEvent
	err       error
}

func (n *recordingNotifier) Notify(_ context.Context, r adapter.Recipient, events []entity.FeedEvent) error {
	n.calls++
	n.recipient = r
	n.events = events
	return n.err
}

func TestDispatcher_Dispatch(t *testing.T) {
	events := []entity.FeedEvent{{Kind: entity.FeedEventLevelUp, Message: "subiu para o nível 2!", Level: 2}}

	t.Run("forwards events with recipient", func(t *testing.T) {
		eng := usecasetest.NewEngine(t)
		n := &recordingNotifier{}
		d := NewDispatcher(eng, n, "user@example.com")

		d.Dispatch(context.Background(), events)

		if n.calls != 1 {
			t.Fatalf("expected 1 call, got %d", n.calls)
		}
		if n.recipient.Email != "user@example.com" || n.recipient.Name != engine.DefaultUserName {
			t.Errorf("unexpected recipient %+v", n.recipient)
		}
	})

	t.Run("skips when notifications are off", func(t *testing.T) {
		eng := usecasetest.NewEngine(t)
		off := false
		eng.UpdateSettings(context.Background(), engine.SettingsUpdate{Notifications: &off})
		n := &recordingNotifier{}

		NewDispatcher(eng, n, "user@example.com").Dispatch(context.Background(), events)

		if n.calls != 0 {
			t.Errorf("expected no calls, got %d", n.calls)
		}
	})

	t.Run("skips empty events and nil notifier", func(t *testing.T) {
		eng := usecasetest.NewEngine(t)
		n := &recordingNotifier{}

		NewDispatcher(eng, n, "user@example.com").Dispatch(context.Background(), nil)
		NewDispatcher(eng, nil, "user@example.com").Dispatch(context.Background(), events)
		var nilDispatcher *Dispatcher
		nilDispatcher.Dispatch(context.Background(), events)

		if n.calls != 0 {
			t.Errorf("expected no calls, got %d", n.calls)
		}
	})

	t.Run("notifier errors are swallowed", func(t *testing.T) {
		eng := usecasetest.NewEngine(t)
		n := &recordingNotifier{err: errors.New("queue down")}

		NewDispatcher(eng, n, "user@example.com").Dispatch(context.Background(), events)

		if n.calls != 1 {
			t.Errorf("expected 1 call, got %d", n.calls)
		}
	})
}
