package commands_test

import (
	"errors"
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderTableRepository)
	uow := new(MockTableRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*table.OrderTable")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderTableCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderTableCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderTableRepository)
	uow := new(MockTableRegistryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*table.OrderTable")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableRegistryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderTableCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
