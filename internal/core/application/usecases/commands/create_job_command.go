package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrPickupRegionIsRequired   = errors.New("pickup region is required")
	ErrDeliveryRegionIsRequired = errors.New("delivery region is required")
)

// CreateJobCommand represents a request to book a new transport job.
// Encapsulates the job's requirements and the agreed price.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, "curtain_sider", "Manchester", "Leeds", 125000, "GBP")
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	vehicleType    string
	pickupRegion   string
	deliveryRegion string
	agreedAmount   int64
	currency       string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to book a new transport job.
// The vehicle type is optional; both regions are required. The agreed value
// is given in minor currency units and is validated by the handler when the
// Money value object is constructed.
func NewCreateJobCommand(
	jobID kernel.UUID,
	vehicleType, pickupRegion, deliveryRegion string,
	agreedAmount int64, currency string,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		vehicleType:  vehicleType,
		agreedAmount: agreedAmount,
		currency:     currency,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setPickupRegion(pickupRegion),
		jobCommand.setDeliveryRegion(deliveryRegion),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// VehicleType returns the required vehicle category, or empty when unset.
func (c CreateJobCommand) VehicleType() string {
	return c.vehicleType
}

// PickupRegion returns the collection region.
func (c CreateJobCommand) PickupRegion() string {
	return c.pickupRegion
}

// DeliveryRegion returns the destination region.
func (c CreateJobCommand) DeliveryRegion() string {
	return c.deliveryRegion
}

// AgreedAmount returns the agreed price in minor currency units.
func (c CreateJobCommand) AgreedAmount() int64 {
	return c.agreedAmount
}

// Currency returns the ISO currency code of the agreed price.
func (c CreateJobCommand) Currency() string {
	return c.currency
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setPickupRegion(pickupRegion string) error {
	if pickupRegion == "" {
		return ErrPickupRegionIsRequired
	}

	c.pickupRegion = pickupRegion
	return nil
}

func (c *CreateJobCommand) setDeliveryRegion(deliveryRegion string) error {
	if deliveryRegion == "" {
		return ErrDeliveryRegionIsRequired
	}

	c.deliveryRegion = deliveryRegion
	return nil
}
