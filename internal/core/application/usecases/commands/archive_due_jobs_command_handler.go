package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/job"
)

// ArchiveDueJobsCommandHandler executes due archival effects.
// Retrieves every scheduled effect whose due time has passed, transitions
// the affected jobs to archived, and marks the effects completed within a
// single transaction.
//
// Jobs found in the issues state are skipped and retried on the next sweep:
// an interrupted job must be resolved by an operator before it disappears
// into the archive.
type ArchiveDueJobsCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewArchiveDueJobsCommandHandler creates a handler for the archival sweep.
func NewArchiveDueJobsCommandHandler(uowFactory JobUoWFactory) ArchiveDueJobsCommandHandler {
	return ArchiveDueJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archival sweep command.
// Returns the number of jobs archived by this sweep.
func (h ArchiveDueJobsCommandHandler) Handle(ctx context.Context, command ArchiveDueJobsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	scheduler := uow.EffectScheduler()

	dueEffects, err := scheduler.GetDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, effect := range dueEffects {
		if effect.Kind != job.EffectArchiveJob {
			continue
		}

		dueJob, err := jobRepo.Get(ctx, effect.JobID)
		if err != nil {
			return 0, err
		}

		switch dueJob.Status() {
		case job.Archived:
			// Already archived through another path; the effect is satisfied.
			if err = scheduler.MarkCompleted(ctx, effect.ID); err != nil {
				return 0, err
			}
			continue

		case job.Issues:
			continue
		}

		if _, err = dueJob.TransitionTo(job.Archived, job.TransitionContext{
			AssignedCarrierID: dueJob.AssignedCarrier(),
			ArchiveDue:        true,
			Now:               time.Now(),
		}); err != nil {
			return 0, err
		}

		if err = jobRepo.Update(ctx, dueJob); err != nil {
			return 0, err
		}

		if err = scheduler.MarkCompleted(ctx, effect.ID); err != nil {
			return 0, err
		}

		archived++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}
