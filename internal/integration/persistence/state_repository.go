// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/contacomigo/backend/internal/application/adapter"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/persistence/model"
)

// stateRepository implements adapter.StateStore on a SQL table.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new SQL-backed state store.
func NewStateRepository(db *gorm.DB) adapter.StateStore {
	return &stateRepository{
		db: db,
	}
}

// Get returns the stored value of key.
func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row model.StateSliceModel
	result := r.db.WithContext(ctx).Where("state_key = ?", key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewStateError(domainerror.ErrCodeStateRead, key, result.Error)
	}
	return []byte(row.Value), true, nil
}

// Set inserts or replaces the value of key.
func (r *stateRepository) Set(ctx context.Context, key string, value []byte) error {
	row := model.StateSliceModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateWrite, key, result.Error)
	}
	return nil
}

// Delete removes the given keys. Missing keys are ignored.
func (r *stateRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Where("state_key IN ?", keys).Delete(&model.StateSliceModel{})
	if result.Error != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateDelete, keys[0], result.Error)
	}
	return nil
}

// Ping checks the database connection.
func (r *stateRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Join(domainerror.ErrStateUnavailable, err)
	}
	return nil
}
