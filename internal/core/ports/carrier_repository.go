package ports

import (
	"context"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
)

// CarrierFilter narrows a carrier listing on exact criteria. Zero-value
// fields are ignored. Filtering is a persistence concern; fuzzy scoring
// happens afterwards in the matching service.
type CarrierFilter struct {
	// Region keeps carriers whose regions of interest contain the value.
	Region string

	// FleetType keeps carriers whose fleet types contain the value.
	FleetType string

	// Search keeps carriers whose name contains the value, case-insensitively.
	Search string
}

// CarrierRepository defines the persistence contract for carrier aggregates.
// Provides methods for storing, retrieving, and querying carrier entities
// with their complete state including compliance documents.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	// The carrier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	// The carrier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	// Returns the complete carrier with all compliance documents.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAll retrieves carriers matching the filter. A zero filter returns
	// every carrier.
	GetAll(ctx context.Context, filter CarrierFilter) ([]*carrier.Carrier, error)
}
