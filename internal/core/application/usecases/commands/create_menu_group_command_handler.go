package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menu"
)

// CreateMenuGroupCommandHandler handles menu group registration.
type CreateMenuGroupCommandHandler struct {
	uowFactory MenuGroupUoWFactory
}

// NewCreateMenuGroupCommandHandler creates a handler for menu group registration.
func NewCreateMenuGroupCommandHandler(uowFactory MenuGroupUoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu group creation command.
func (h *CreateMenuGroupCommandHandler) Handle(ctx context.Context, cmd CreateMenuGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	group, err := menu.NewMenuGroup(cmd.MenuGroupID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.MenuGroupRepository().Add(ctx, group); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
