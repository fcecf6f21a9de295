package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

// ChangeTableEmptyCommandHandler flips a table between empty and occupied.
//
// Any empty-flag change is rejected while the table has an order in
// progress, in either direction. The verification and the mutation run in
// one transaction over a locked table row, so an order placed concurrently
// cannot slip past the check.
type ChangeTableEmptyCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeTableEmptyCommandHandler creates a handler for empty flag changes.
func NewChangeTableEmptyCommandHandler(uowFactory TableUoWFactory) ChangeTableEmptyCommandHandler {
	return ChangeTableEmptyCommandHandler{uowFactory: uowFactory}
}

// Handle processes the empty flag change command.
func (h *ChangeTableEmptyCommandHandler) Handle(ctx context.Context, cmd ChangeTableEmptyCommand) error {
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

	inProgress, err := uow.OrderActivityVerifier().IsOrderInProgress(ctx, orderTable.ID())
	if err != nil {
		return err
	}
	if inProgress {
		return table.ErrTableHasActiveOrder
	}

	if err = orderTable.ChangeEmpty(cmd.Empty()); err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
