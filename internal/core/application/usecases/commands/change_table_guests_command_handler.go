package commands

import (
	"context"
)

// ChangeTableGuestsCommandHandler sets the guest count of an occupied table.
// Guest count changes are not gated by order activity.
type ChangeTableGuestsCommandHandler struct {
	uowFactory TableRegistryUoWFactory
}

// NewChangeTableGuestsCommandHandler creates a handler for guest count changes.
func NewChangeTableGuestsCommandHandler(uowFactory TableRegistryUoWFactory) ChangeTableGuestsCommandHandler {
	return ChangeTableGuestsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the guest count change command.
func (h *ChangeTableGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeTableGuestsCommand) error {
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

	orderTable, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	if err = orderTable.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
