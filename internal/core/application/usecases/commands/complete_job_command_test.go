package commands_test

import (
	"testing"

	"jobmatch/internal/core/application/usecases/commands"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteJobCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCompleteJobCommand(id)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.JobID())
}

func TestNewCompleteJobCommand_InvalidJobID(t *testing.T) {
	_, err := commands.NewCompleteJobCommand(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteJobCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CompleteJobCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteJobCommandIsNotConstructed)
}
