package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/job"
)

// ChangeJobStatusCommandHandler drives job lifecycle transitions.
// The aggregate enforces the transition table and preconditions; the handler
// supplies the external facts, persists the result with a version-checked
// write, and keeps the deferred-effect schedule consistent with the new
// state:
//
//   - Completion schedules the archival effect after the configured delay
//   - Entering the issues state cancels the pending archival
//   - Resolving issues back to completed reinstates it
type ChangeJobStatusCommandHandler struct {
	uowFactory   JobUoWFactory
	archiveDelay time.Duration
}

// NewChangeJobStatusCommandHandler creates a handler for status transitions.
// archiveDelay is how long a completed job rests before it becomes due for
// archival.
func NewChangeJobStatusCommandHandler(
	uowFactory JobUoWFactory, archiveDelay time.Duration,
) ChangeJobStatusCommandHandler {
	return ChangeJobStatusCommandHandler{
		uowFactory:   uowFactory,
		archiveDelay: archiveDelay,
	}
}

// Handle processes the status change command.
func (h ChangeJobStatusCommandHandler) Handle(ctx context.Context, command ChangeJobStatusCommand) error {
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
	scheduler := uow.EffectScheduler()

	changedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	now := time.Now()
	previousStatus := changedJob.Status()

	effects, err := changedJob.TransitionTo(command.Target(), job.TransitionContext{
		AssignedCarrierID: changedJob.AssignedCarrier(),
		PaymentConfirmed:  command.PaymentConfirmed(),
		ArchiveDue:        h.isArchiveDue(changedJob, now),
		Now:               now,
	})
	if err != nil {
		return err
	}

	for _, effect := range effects {
		if err = scheduler.Schedule(ctx, effect, now.Add(h.archiveDelay)); err != nil {
			return err
		}
	}

	// An interrupted job must not be archived from under the operator; a
	// resolved one picks its archival back up from the original completion.
	if changedJob.Status() == job.Issues {
		if err = scheduler.Cancel(ctx, changedJob.ID(), job.EffectArchiveJob); err != nil {
			return err
		}
	}
	if previousStatus == job.Issues && changedJob.Status() == job.Completed {
		dueAt := changedJob.CompletedAt().Add(h.archiveDelay)
		effect := job.DeferredEffect{Kind: job.EffectArchiveJob, JobID: changedJob.ID()}
		if err = scheduler.Schedule(ctx, effect, dueAt); err != nil {
			return err
		}
	}

	if err = jobRepo.Update(ctx, changedJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// isArchiveDue reports whether the job's archival delay has elapsed.
func (h ChangeJobStatusCommandHandler) isArchiveDue(j *job.Job, now time.Time) bool {
	completedAt := j.CompletedAt()
	return completedAt != nil && !now.Before(completedAt.Add(h.archiveDelay))
}
