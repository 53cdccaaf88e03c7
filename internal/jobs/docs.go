// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the assignment core.
//
// # Available Jobs
//
// 1. ArchiveSweepJob - Periodically archives completed jobs whose archival delay has elapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveDueJobsHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses a six-field cron expression with a seconds component, e.g.
// "0 * * * * *" for once a minute. The sweep is idempotent: archival effects
// are stored durably, so a missed run is picked up by the next one and a job
// interrupted by issues is retried once its issues resolve.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
