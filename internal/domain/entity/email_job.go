// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	// TemplateMilestone narrates a level-up, badge unlock or streak milestone.
	TemplateMilestone EmailTemplateType = "milestone"
)

// EmailJob represents an email in the queue waiting to be sent.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a new EmailJob scheduled at now.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}, now time.Time) *EmailJob {
	now = now.UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the email job as currently being processed.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent marks the email job as successfully sent.
func (e *EmailJob) MarkSent(resendID string, now time.Time) {
	e.Status = EmailStatusSent
	e.ResendID = resendID
	processed := now.UTC()
	e.ProcessedAt = &processed
}

// MarkFailed records a failed attempt. The job is failed for good when the
// error is permanent or attempts are exhausted; otherwise it is rescheduled.
func (e *EmailJob) MarkFailed(err error, permanent bool, now time.Time) {
	e.Attempts++
	e.LastError = err.Error()
	now = now.UTC()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(RetryDelay(e.Attempts))
}

// RetryDelay returns the backoff before the given attempt: 0s, 1min, then 5min.
func RetryDelay(attempts int) time.Duration {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if attempts < len(delays) {
		return delays[attempts]
	}
	return 5 * time.Minute
}

// CanRetry returns true if the email job can be retried.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}

// IsReadyToProcess returns true if the email job is ready to be processed at now.
func (e *EmailJob) IsReadyToProcess(now time.Time) bool {
	return e.Status == EmailStatusPending && !now.Before(e.ScheduledAt)
}
