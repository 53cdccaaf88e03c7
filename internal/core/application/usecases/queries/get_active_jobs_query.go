// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetActiveJobsQueryIsNotConstructed = errors.New(
	"GetActiveJobsQuery must be created via NewGetActiveJobsQuery constructor",
)

// GetActiveJobsQuery retrieves every job that has not been archived.
// Returns the operational overview of bookings currently in flight.
//
// Example:
//
//	query := NewGetActiveJobsQuery()
//	handler := NewGetActiveJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve active jobs: %w", err)
//	}
//
//	fmt.Printf("%d jobs in flight\n", len(jobs))
type GetActiveJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveJobsQuery creates a query to retrieve all non-archived jobs.
// This is a parameterless query.
func NewGetActiveJobsQuery() GetActiveJobsQuery {
	return GetActiveJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveJobsQueryIsNotConstructed if validation fails.
func (q GetActiveJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveJobsQueryIsNotConstructed)
}

// GetActiveJobsQueryResponse represents one job in the active-jobs read model.
type GetActiveJobsQueryResponse struct {
	ID                      kernel.UUID
	VehicleType             string
	PickupRegion            string
	DeliveryRegion          string
	AgreedAmount            int64
	AgreedCurrency          string
	Status                  string
	ProofOfDeliveryUploaded bool
	AssignedCarrierID       *kernel.UUID
	Version                 int64
}
