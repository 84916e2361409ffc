package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/persistence/model"
)

// emailQueueRepository is the gorm outbox for milestone emails.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("failed to queue %s email for %s: %w", job.TemplateType, job.RecipientEmail, err)
	}
	return nil
}

// GetPendingJobs returns up to limit pending jobs due at now, oldest schedule first.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, now.UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending jobs: %w", err)
	}
	return toEmailJobs(rows), nil
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("failed to update email job %s: %w", job.ID, err)
	}
	return nil
}

func (r *emailQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	var row model.EmailQueueModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrEmailJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email job %s: %w", id, err)
	}
	return row.ToEntity(), nil
}

// GetByRecipient returns every job for email, newest first.
func (r *emailQueueRepository) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get email jobs for %s: %w", email, err)
	}
	return toEmailJobs(rows), nil
}

// DeleteOldSentJobs purges sent jobs processed before the cutoff. Failed
// jobs are kept for inspection.
func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, before.UTC()).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge sent emails: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toEmailJobs(rows []model.EmailQueueModel) []*entity.EmailJob {
	jobs := make([]*entity.EmailJob, len(rows))
	for i := range rows {
		jobs[i] = rows[i].ToEntity()
	}
	return jobs
}
