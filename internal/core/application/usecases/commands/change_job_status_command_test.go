package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeJobStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeJobStatusCommand(id, job.InProgress, false)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.JobID())
	assert.Equal(t, job.InProgress, cmd.Target())
	assert.False(t, cmd.PaymentConfirmed())
}

func TestNewChangeJobStatusCommand_PaymentConfirmed(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeJobStatusCommand(id, job.Completed, true)
	require.NoError(t, err)
	assert.True(t, cmd.PaymentConfirmed())
}

func TestNewChangeJobStatusCommand_InvalidJobID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewChangeJobStatusCommand(invalidID, job.InProgress, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeJobStatusCommand_UnknownTarget(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewChangeJobStatusCommand(id, job.Unknown, false)
	require.Error(t, err)
}
