package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupTablesCommand_ValidInput(t *testing.T) {
	groupID := kernel.NewUUID()
	tableIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewGroupTablesCommand(groupID, tableIDs)
	require.NoError(t, err)
	assert.Equal(t, groupID, cmd.TableGroupID())
	assert.Equal(t, tableIDs, cmd.TableIDs())
}

func TestNewGroupTablesCommand_TooFewTables(t *testing.T) {
	_, err := commands.NewGroupTablesCommand(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInsufficientTablesForGroup)
}

func TestNewGroupTablesCommand_InvalidTableID(t *testing.T) {
	_, err := commands.NewGroupTablesCommand(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID(), {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
