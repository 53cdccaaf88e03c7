package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrArchiveDueJobsCommandIsNotConstructed = errors.New(
	"ArchiveDueJobsCommand must be created via NewArchiveDueJobsCommand constructor",
)

// ArchiveDueJobsCommand triggers a sweep of the scheduled archival effects.
// Every completed job whose archival delay has elapsed is moved to the
// archived status. The sweep is run periodically by a background job, so a
// process restart never loses a scheduled archival.
type ArchiveDueJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveDueJobsCommand creates a new command to trigger the archival sweep.
// This is a parameterless command.
func NewArchiveDueJobsCommand() ArchiveDueJobsCommand {
	return ArchiveDueJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveDueJobsCommandIsNotConstructed if validation fails.
func (c *ArchiveDueJobsCommand) Validate() error {
	return c.guard.Validate(
		ErrArchiveDueJobsCommandIsNotConstructed,
	)
}
