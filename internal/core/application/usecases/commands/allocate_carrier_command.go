package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAllocateCarrierCommandIsNotConstructed = errors.New(
	"AllocateCarrierCommand must be created via NewAllocateCarrierCommand constructor",
)

// AllocateCarrierCommand requests the allocation of a carrier to a booked job.
// When a carrier ID is given the operator's explicit choice is validated
// against the current ranking; without one the top-ranked eligible carrier
// is selected automatically.
//
// Example:
//
//	// explicit selection
//	cmd, err := NewAllocateCarrierCommand(jobID, &carrierID)
//
//	// automatic selection
//	cmd, err := NewAllocateCarrierCommand(jobID, nil)
type AllocateCarrierCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	carrierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAllocateCarrierCommand creates a command to allocate a carrier.
// The job ID must be valid; carrierID may be nil for automatic selection.
func NewAllocateCarrierCommand(jobID kernel.UUID, carrierID *kernel.UUID) (AllocateCarrierCommand, error) {
	allocateCommand := AllocateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := allocateCommand.setJobID(jobID); err != nil {
		return AllocateCarrierCommand{}, err
	}

	if err := allocateCommand.setCarrierID(carrierID); err != nil {
		return AllocateCarrierCommand{}, err
	}

	return allocateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateCarrierCommandIsNotConstructed if validation fails.
func (c AllocateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAllocateCarrierCommandIsNotConstructed)
}

// JobID returns the job to allocate a carrier to.
func (c AllocateCarrierCommand) JobID() kernel.UUID {
	return c.jobID
}

// CarrierID returns the explicitly selected carrier, or nil for automatic
// selection.
func (c AllocateCarrierCommand) CarrierID() *kernel.UUID {
	return c.carrierID
}

func (c *AllocateCarrierCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AllocateCarrierCommand) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return err
		}
	}

	c.carrierID = carrierID
	return nil
}
