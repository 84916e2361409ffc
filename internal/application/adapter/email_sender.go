package adapter

import (
	"context"

	"github.com/contacomigo/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
	// Tag labels the email with the milestone kind, if any.
	Tag string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// Recipient identifies who receives milestone notifications.
type Recipient struct {
	Email string
	Name  string
}

// MilestoneNotifier is told about the feed events a mutation produced.
type MilestoneNotifier interface {
	// Notify queues one notification per event.
	Notify(ctx context.Context, recipient Recipient, events []entity.FeedEvent) error
}
