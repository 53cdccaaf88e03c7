// Package effectrepo persists deferred effects emitted by job transitions.
// Effects are stored rather than held in process memory so a scheduled
// archival survives restarts: the sweep job re-reads whatever is due.
package effectrepo

import (
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/google/uuid"
)

// EffectDTO represents the database structure for persisting deferred effects.
// A row is pending while both completed_at and canceled_at are null.
type EffectDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"type:varchar(64);not null;index"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DueAt       time.Time `gorm:"not null;index"`
	CompletedAt *time.Time
	CanceledAt  *time.Time
}

// TableName specifies the database table name for deferred effect entities.
func (EffectDTO) TableName() string {
	return "deferred_effects"
}

// toScheduled converts a database DTO to the port's read model.
func toScheduled(dto EffectDTO) (ports.ScheduledEffect, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ScheduledEffect{}, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return ports.ScheduledEffect{}, err
	}

	return ports.ScheduledEffect{
		ID:    id,
		Kind:  job.EffectKind(dto.Kind),
		JobID: jobID,
		DueAt: dto.DueAt,
	}, nil
}
