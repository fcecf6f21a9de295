package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	lines := []commands.OrderLine{{MenuID: kernel.NewUUID(), Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand(orderID, tableID, lines)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, tableID, cmd.OrderTableID())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	lines := []commands.OrderLine{{MenuID: kernel.NewUUID(), Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
