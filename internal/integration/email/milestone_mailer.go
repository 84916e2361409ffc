package email

import (
	"context"
	"fmt"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
)

// MilestoneMailer queues one milestone email per feed event.
type MilestoneMailer struct {
	queue      adapter.EmailQueueRepository
	clock      adapter.Clock
	appBaseURL string
}

// NewMilestoneMailer creates a new milestone mailer.
func NewMilestoneMailer(queue adapter.EmailQueueRepository, clock adapter.Clock, appBaseURL string) *MilestoneMailer {
	return &MilestoneMailer{
		queue:      queue,
		clock:      clock,
		appBaseURL: appBaseURL,
	}
}

var _ adapter.MilestoneNotifier = (*MilestoneMailer)(nil)

// Notify queues the events. It stops at the first queue failure.
func (m *MilestoneMailer) Notify(ctx context.Context, recipient adapter.Recipient, events []entity.FeedEvent) error {
	for _, ev := range events {
		job := entity.NewEmailJob(
			entity.TemplateMilestone,
			recipient.Email,
			recipient.Name,
			milestoneSubject(ev),
			map[string]interface{}{
				"kind":       string(ev.Kind),
				"message":    ev.Message,
				"level":      ev.Level,
				"badge_name": ev.BadgeName,
				"streak":     ev.Streak,
				"app_url":    m.appBaseURL,
			},
			m.clock.Now(),
		)

		if err := m.queue.Create(ctx, job); err != nil {
			return domainerror.NewEmailError(
				domainerror.ErrCodeEmailQueueFailed,
				"failed to queue milestone email",
				err,
			)
		}
	}
	return nil
}

func milestoneSubject(ev entity.FeedEvent) string {
	switch ev.Kind {
	case entity.FeedEventLevelUp:
		return fmt.Sprintf("Você chegou ao nível %d! - ContaComigo", ev.Level)
	case entity.FeedEventBadgeUnlocked:
		return fmt.Sprintf("Novo badge: %s - ContaComigo", ev.BadgeName)
	case entity.FeedEventStreakMilestone:
		return fmt.Sprintf("%d dias de streak! - ContaComigo", ev.Streak)
	default:
		return "Nova conquista - ContaComigo"
	}
}
