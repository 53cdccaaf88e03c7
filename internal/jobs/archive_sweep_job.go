package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ArchiveSweepJob runs the deferred-archival sweep on a schedule. Each run
// archives every completed job whose archival delay has elapsed, honoring
// any cancellations recorded while the job sat in the issues state.
type ArchiveSweepJob struct {
	handler  commands.ArchiveDueJobsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewArchiveSweepJob creates the sweep job with the given cron schedule
// (six-field expression with seconds).
func NewArchiveSweepJob(
	handler commands.ArchiveDueJobsCommandHandler, schedule string, logger *slog.Logger,
) *ArchiveSweepJob {
	return &ArchiveSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "archive_sweep_job"),
	}
}

// Start begins the archive sweep on its schedule.
func (j *ArchiveSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewArchiveDueJobsCommand()

		archived, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Archive sweep failed", "error", handleErr)
			return
		}

		if archived > 0 {
			j.logger.InfoContext(ctx, "Archive sweep completed", "archived", archived)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the archive sweep job.
func (j *ArchiveSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive sweep job stopped")
}
