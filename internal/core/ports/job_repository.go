// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying job entities
// based on their lifecycle status.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The write is version-checked: the stored row must still carry the
	// version the aggregate was loaded with, otherwise the update fails
	// with errs.ConcurrencyConflictError and no change is applied.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns the complete job with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllActive retrieves all jobs that have not reached the Archived
	// status. Used by the operational overview.
	GetAllActive(ctx context.Context) ([]*job.Job, error)
}
