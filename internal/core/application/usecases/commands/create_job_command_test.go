package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateJobCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(id, "curtain_sider", "Manchester", "Leeds", 125000, "GBP")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.JobID())
	assert.Equal(t, "curtain_sider", cmd.VehicleType())
	assert.Equal(t, "Manchester", cmd.PickupRegion())
	assert.Equal(t, "Leeds", cmd.DeliveryRegion())
	assert.Equal(t, int64(125000), cmd.AgreedAmount())
	assert.Equal(t, "GBP", cmd.Currency())
}

func TestNewCreateJobCommand_VehicleTypeIsOptional(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(id, "", "Manchester", "Leeds", 125000, "GBP")
	require.NoError(t, err)
	assert.Empty(t, cmd.VehicleType())
}

func TestNewCreateJobCommand_InvalidJobID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateJobCommand(invalidID, "", "Manchester", "Leeds", 125000, "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateJobCommand_EmptyPickupRegion(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateJobCommand(id, "", "", "Leeds", 125000, "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPickupRegionIsRequired)
}

func TestNewCreateJobCommand_EmptyDeliveryRegion(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateJobCommand(id, "", "Manchester", "", 125000, "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryRegionIsRequired)
}
