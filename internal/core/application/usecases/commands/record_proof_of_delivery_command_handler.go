package commands

import (
	"context"
)

// RecordProofOfDeliveryCommandHandler marks a job's delivery proof as
// uploaded. The flag gates the finished to invoiced transition.
type RecordProofOfDeliveryCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRecordProofOfDeliveryCommandHandler creates a handler for recording
// delivery proofs.
func NewRecordProofOfDeliveryCommandHandler(uowFactory JobUoWFactory) RecordProofOfDeliveryCommandHandler {
	return RecordProofOfDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proof-of-delivery command.
func (h RecordProofOfDeliveryCommandHandler) Handle(
	ctx context.Context, command RecordProofOfDeliveryCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	changedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = changedJob.RecordProofOfDelivery(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, changedJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
