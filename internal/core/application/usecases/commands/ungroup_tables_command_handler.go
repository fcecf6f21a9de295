package commands

import (
	"context"
	"encoding/json"

	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
)

// TablesUngroupedEventType marks outbox events emitted when a table group
// dissolves.
const TablesUngroupedEventType = "tables.ungrouped"

type tablesUngroupedPayload struct {
	TableGroupID string   `json:"table_group_id"`
	TableIDs     []string `json:"table_ids"`
}

// UngroupTablesCommandHandler dissolves a table group.
//
// Every member passes the order-activity verification before any group
// reference is cleared. The group record itself is kept; membership lives
// on the tables.
type UngroupTablesCommandHandler struct {
	uowFactory GroupUoWFactory
}

// NewUngroupTablesCommandHandler creates a handler for group dissolution.
func NewUngroupTablesCommandHandler(uowFactory GroupUoWFactory) UngroupTablesCommandHandler {
	return UngroupTablesCommandHandler{uowFactory: uowFactory}
}

// Handle processes the group dissolution command.
func (h *UngroupTablesCommandHandler) Handle(ctx context.Context, cmd UngroupTablesCommand) error {
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

	tableGroup, err := uow.TableGroupRepository().Get(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	tables, err := uow.OrderTableRepository().GetByGroupID(ctx, tableGroup.ID())
	if err != nil {
		return err
	}

	coordinator, err := services.NewTableGroupCoordinator(uow.OrderActivityVerifier())
	if err != nil {
		return err
	}

	if err = coordinator.Ungroup(ctx, tables); err != nil {
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

	payload, err := json.Marshal(tablesUngroupedPayload{
		TableGroupID: tableGroup.ID().String(),
		TableIDs:     memberIDs,
	})
	if err != nil {
		return err
	}

	event := ports.NewIntegrationEvent(TablesUngroupedEventType, payload)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
