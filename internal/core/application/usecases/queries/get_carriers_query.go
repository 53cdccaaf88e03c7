package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCarriersQueryIsNotConstructed = errors.New(
	"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
)

// GetCarriersQuery retrieves the carrier directory, optionally narrowed by
// exact region or fleet membership and a name search. All filter fields are
// optional; empty values match everything.
type GetCarriersQuery struct {
	region    string
	fleetType string
	search    string

	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query to retrieve carriers.
// region keeps carriers covering the given region, fleetType keeps carriers
// running the given vehicle category, and search matches against the
// carrier name case-insensitively.
func NewGetCarriersQuery(region, fleetType, search string) GetCarriersQuery {
	return GetCarriersQuery{
		region:    region,
		fleetType: fleetType,
		search:    search,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCarriersQueryIsNotConstructed if validation fails.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// Region returns the exact region filter, or empty.
func (q GetCarriersQuery) Region() string {
	return q.region
}

// FleetType returns the exact fleet type filter, or empty.
func (q GetCarriersQuery) FleetType() string {
	return q.fleetType
}

// Search returns the name search term, or empty.
func (q GetCarriersQuery) Search() string {
	return q.search
}

// GetCarriersQueryResponse represents one carrier in the directory read model.
type GetCarriersQueryResponse struct {
	ID                kernel.UUID
	Name              string
	RegionsOfInterest []string
	FleetTypes        []string
	ServicesOffered   []string
	HasWarehousing    bool
}
