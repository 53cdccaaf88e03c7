package effectrepo

import (
	"context"
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// GormEffectScheduler implements EffectScheduler using GORM.
type GormEffectScheduler struct {
	db *gorm.DB
}

// NewGormEffectScheduler creates a new GORM effect scheduler.
func NewGormEffectScheduler(db *gorm.DB) *GormEffectScheduler {
	return &GormEffectScheduler{db: db}
}

// Schedule persists a deferred effect to execute at dueAt.
func (s *GormEffectScheduler) Schedule(
	ctx context.Context, effect job.DeferredEffect, dueAt time.Time,
) error {
	dto := EffectDTO{
		ID:    kernel.NewUUID().Bytes(),
		Kind:  string(effect.Kind),
		JobID: effect.JobID.Bytes(),
		DueAt: dueAt,
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}

// Cancel marks all pending effects of the given kind for the job as canceled.
func (s *GormEffectScheduler) Cancel(
	ctx context.Context, jobID kernel.UUID, kind job.EffectKind,
) error {
	now := time.Now()

	return s.db.WithContext(ctx).
		Model(&EffectDTO{}).
		Where("job_id = ? AND kind = ? AND completed_at IS NULL AND canceled_at IS NULL",
			jobID.Bytes(), string(kind)).
		Update("canceled_at", &now).Error
}

// GetDue retrieves pending effects whose due time is at or before asOf.
func (s *GormEffectScheduler) GetDue(
	ctx context.Context, asOf time.Time,
) ([]ports.ScheduledEffect, error) {
	var dtos []EffectDTO
	if err := s.db.WithContext(ctx).
		Where("due_at <= ? AND completed_at IS NULL AND canceled_at IS NULL", asOf).
		Order("due_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	effects := make([]ports.ScheduledEffect, 0, len(dtos))
	for _, dto := range dtos {
		effect, err := toScheduled(dto)
		if err != nil {
			return nil, err
		}
		effects = append(effects, effect)
	}

	return effects, nil
}

// MarkCompleted records that a scheduled effect was executed.
func (s *GormEffectScheduler) MarkCompleted(ctx context.Context, id kernel.UUID) error {
	now := time.Now()

	result := s.db.WithContext(ctx).
		Model(&EffectDTO{}).
		Where("id = ? AND completed_at IS NULL", id.Bytes()).
		Update("completed_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
