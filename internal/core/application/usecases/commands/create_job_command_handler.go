package commands

import (
	"context"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// CreateJobCommandHandler handles the business logic for booking a job.
// New jobs start in Booked status awaiting carrier allocation.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job booking operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job booking command.
// Constructs the requirements and agreed value from the command's raw fields
// and persists the new job. Uses a transaction so the job is fully created
// or not at all.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requirements, err := job.NewRequirements(
		cmd.VehicleType(), cmd.PickupRegion(), cmd.DeliveryRegion(),
	)
	if err != nil {
		return err
	}

	agreedValue, err := kernel.NewMoney(cmd.AgreedAmount(), cmd.Currency())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	newJob, err := job.NewJob(cmd.JobID(), requirements, agreedValue)
	if err != nil {
		return err
	}

	if err = jobRepo.Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
