package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// ScheduledEffect is a persisted deferred effect awaiting execution.
// Persisting effects keeps them restart-safe: an archival scheduled before
// a process restart is still executed after it.
type ScheduledEffect struct {
	// ID identifies the scheduled row.
	ID kernel.UUID

	// Kind names the effect to execute.
	Kind job.EffectKind

	// JobID is the job the effect applies to.
	JobID kernel.UUID

	// DueAt is the earliest time the effect may execute.
	DueAt time.Time
}

// EffectScheduler defines the persistence contract for deferred effects.
// Effects are scheduled in the same transaction as the state change that
// produced them, swept by a background job once due, and canceled when the
// producing state is reversed.
type EffectScheduler interface {
	// Schedule persists a deferred effect to execute at dueAt.
	Schedule(ctx context.Context, effect job.DeferredEffect, dueAt time.Time) error

	// Cancel marks all pending effects of the given kind for the job as
	// canceled. Canceling a job with no pending effects is not an error.
	Cancel(ctx context.Context, jobID kernel.UUID, kind job.EffectKind) error

	// GetDue retrieves pending effects whose due time is at or before asOf.
	GetDue(ctx context.Context, asOf time.Time) ([]ScheduledEffect, error)

	// MarkCompleted records that a scheduled effect was executed.
	MarkCompleted(ctx context.Context, id kernel.UUID) error
}
