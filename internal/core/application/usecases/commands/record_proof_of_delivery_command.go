package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRecordProofOfDeliveryCommandIsNotConstructed = errors.New(
	"RecordProofOfDeliveryCommand must be created via NewRecordProofOfDeliveryCommand constructor",
)

// RecordProofOfDeliveryCommand records that a proof-of-delivery document was
// stored for a job. The document itself lives in the external document
// store; the core tracks only the fact, which gates invoicing.
type RecordProofOfDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordProofOfDeliveryCommand creates a command to record a delivery proof.
func NewRecordProofOfDeliveryCommand(jobID kernel.UUID) (RecordProofOfDeliveryCommand, error) {
	podCommand := RecordProofOfDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := podCommand.setJobID(jobID); err != nil {
		return RecordProofOfDeliveryCommand{}, err
	}

	return podCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordProofOfDeliveryCommandIsNotConstructed if validation fails.
func (c RecordProofOfDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordProofOfDeliveryCommandIsNotConstructed)
}

// JobID returns the job the proof of delivery belongs to.
func (c RecordProofOfDeliveryCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *RecordProofOfDeliveryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
