package commands

import (
	"errors"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrChangeJobStatusCommandIsNotConstructed = errors.New(
	"ChangeJobStatusCommand must be created via NewChangeJobStatusCommand constructor",
)

// ChangeJobStatusCommand requests a lifecycle transition for a job.
// The transition itself is validated by the aggregate; the command only
// carries the target status and the external facts the preconditions need.
type ChangeJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID            kernel.UUID
	target           job.Status
	paymentConfirmed bool

	guard guard.ConstructorGuard
}

// NewChangeJobStatusCommand creates a command to transition a job.
// paymentConfirmed asserts that payment for the job has been confirmed by
// the finance system; it gates the cleared to completed transition.
func NewChangeJobStatusCommand(
	jobID kernel.UUID, target job.Status, paymentConfirmed bool,
) (ChangeJobStatusCommand, error) {
	statusCommand := ChangeJobStatusCommand{
		paymentConfirmed: paymentConfirmed,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setJobID(jobID),
		statusCommand.setTarget(target),
	); err != nil {
		return ChangeJobStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeJobStatusCommandIsNotConstructed if validation fails.
func (c ChangeJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeJobStatusCommandIsNotConstructed)
}

// JobID returns the job to transition.
func (c ChangeJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// Target returns the requested lifecycle status.
func (c ChangeJobStatusCommand) Target() job.Status {
	return c.target
}

// PaymentConfirmed reports whether payment has been confirmed for the job.
func (c ChangeJobStatusCommand) PaymentConfirmed() bool {
	return c.paymentConfirmed
}

func (c *ChangeJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ChangeJobStatusCommand) setTarget(target job.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
