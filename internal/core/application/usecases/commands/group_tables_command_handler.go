package commands

import (
	"context"
	"encoding/json"

	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// TablesGroupedEventType marks outbox events emitted when a table group forms.
const TablesGroupedEventType = "tables.grouped"

type tablesGroupedPayload struct {
	TableGroupID string   `json:"table_group_id"`
	TableIDs     []string `json:"table_ids"`
}

// GroupTablesCommandHandler forms a table group.
//
// Member rows are loaded under a row lock, every member passes the
// coordinator's checks before any mutation, and the group record plus all
// membership updates commit as one unit. A duplicated or unknown table
// identifier surfaces as a resolved-count mismatch.
type GroupTablesCommandHandler struct {
	uowFactory GroupUoWFactory
}

// NewGroupTablesCommandHandler creates a handler for group formation.
func NewGroupTablesCommandHandler(uowFactory GroupUoWFactory) GroupTablesCommandHandler {
	return GroupTablesCommandHandler{uowFactory: uowFactory}
}

// Handle processes the group formation command.
func (h *GroupTablesCommandHandler) Handle(ctx context.Context, cmd GroupTablesCommand) error {
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

	tableIDs := cmd.TableIDs()

	tables, err := uow.OrderTableRepository().GetByIDs(ctx, tableIDs)
	if err != nil {
		return err
	}
	if len(tables) != len(tableIDs) {
		return errs.NewObjectNotFoundError("orderTableIds", tableIDs)
	}

	tableGroup, err := table.NewTableGroup(cmd.TableGroupID())
	if err != nil {
		return err
	}

	coordinator, err := services.NewTableGroupCoordinator(uow.OrderActivityVerifier())
	if err != nil {
		return err
	}

	if err = coordinator.Group(ctx, tableGroup, tables); err != nil {
		return err
	}

	if err = uow.TableGroupRepository().Add(ctx, tableGroup); err != nil {
		return err
	}

	for _, member := range tables {
		if err = uow.OrderTableRepository().Update(ctx, member); err != nil {
			return err
		}
	}

	memberIDs := make([]string, 0, len(tables))
	for _, member := range tables {
		memberIDs = append(memberIDs, member.ID().String())
	}

	payload, err := json.Marshal(tablesGroupedPayload{
		TableGroupID: tableGroup.ID().String(),
		TableIDs:     memberIDs,
	})
	if err != nil {
		return err
	}

	event := ports.NewIntegrationEvent(TablesGroupedEventType, payload)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
