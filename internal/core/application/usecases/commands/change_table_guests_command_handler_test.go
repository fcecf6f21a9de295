package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emptyTable(t *testing.T, id kernel.UUID) *table.OrderTable {
	t.Helper()
	orderTable, err := table.NewOrderTable(id)
	require.NoError(t, err)
	return orderTable
}

func TestChangeTableGuestsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, err := commands.NewChangeTableGuestsCommand(tableID, 4)
	require.NoError(t, err)

	repo := new(MockOrderTableRepository)
	uow := new(MockTableRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tableID).Return(occupiedTable(t, tableID), nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*table.OrderTable")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTableGuestsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeTableGuestsCommandHandler_Handle_EmptyTable(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, err := commands.NewChangeTableGuestsCommand(tableID, 4)
	require.NoError(t, err)

	repo := new(MockOrderTableRepository)
	uow := new(MockTableRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tableID).Return(emptyTable(t, tableID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTableGuestsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, table.ErrTableIsEmpty)
}

func TestChangeTableGuestsCommandHandler_Handle_NegativeCount(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, err := commands.NewChangeTableGuestsCommand(tableID, -1)
	require.NoError(t, err)

	repo := new(MockOrderTableRepository)
	uow := new(MockTableRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tableID).Return(occupiedTable(t, tableID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTableGuestsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
