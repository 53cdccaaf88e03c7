package job

import (
	"errors"

	"freight/internal/pkg/errs"
)

// Requirement validation errors.
var (
	// ErrPickupRegionIsRequired is returned when requirements lack a pickup region.
	ErrPickupRegionIsRequired = errs.NewValueIsRequiredError("pickupRegion")
	// ErrDeliveryRegionIsRequired is returned when requirements lack a delivery region.
	ErrDeliveryRegionIsRequired = errs.NewValueIsRequiredError("deliveryRegion")
	// ErrRequirementsAreNotConstructed is returned when using zero-value Requirements.
	ErrRequirementsAreNotConstructed = errors.New(
		"Requirements must be created via NewRequirements constructor",
	)
)

// Requirements captures what a job demands from a carrier: the required
// vehicle or trailer category and the pickup/delivery region identifiers
// derived from the job's addresses.
//
// Region and vehicle identifiers are free text. Carrier matching compares
// them by case-insensitive substring, so a region like "North East" may
// substring-match unrelated names; tightening that is a product decision.
//
// VehicleType may be empty, meaning the job does not constrain the vehicle
// category; matching then skips the fleet rule without penalty.
type Requirements struct {
	vehicleType    string
	pickupRegion   string
	deliveryRegion string

	isConstructed bool
}

// NewRequirements creates job requirements. Both regions are mandatory;
// vehicleType may be empty when the job does not constrain the fleet.
func NewRequirements(vehicleType, pickupRegion, deliveryRegion string) (Requirements, error) {
	if pickupRegion == "" {
		return Requirements{}, ErrPickupRegionIsRequired
	}

	if deliveryRegion == "" {
		return Requirements{}, ErrDeliveryRegionIsRequired
	}

	return Requirements{
		vehicleType:    vehicleType,
		pickupRegion:   pickupRegion,
		deliveryRegion: deliveryRegion,
		isConstructed:  true,
	}, nil
}

// VehicleType returns the required vehicle/trailer category, or "" when the
// job does not constrain it.
func (r Requirements) VehicleType() string {
	return r.vehicleType
}

// PickupRegion returns the origin region identifier.
func (r Requirements) PickupRegion() string {
	return r.pickupRegion
}

// DeliveryRegion returns the destination region identifier.
func (r Requirements) DeliveryRegion() string {
	return r.deliveryRegion
}

// Validate ensures the Requirements value was created via NewRequirements.
func (r Requirements) Validate() error {
	if !r.isConstructed {
		return ErrRequirementsAreNotConstructed
	}
	return nil
}
