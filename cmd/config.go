package cmd

import "time"

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ArchiveDelay is how long a completed job waits before archival.
	ArchiveDelay time.Duration
	// ComplianceWarningWindow is how close to expiry a document may be
	// before the carrier's status degrades to warning.
	ComplianceWarningWindow time.Duration
	// ArchiveSweepSchedule is the six-field cron expression for the sweep.
	ArchiveSweepSchedule string
}
