package commands

import (
	"context"
	"encoding/json"

	"kitchenpos/internal/core/ports"
)

// OrderStatusChangedEventType marks outbox events emitted when an order
// moves to another status.
const OrderStatusChangedEventType = "order.status_changed"

type orderStatusChangedPayload struct {
	OrderID      string `json:"order_id"`
	OrderTableID string `json:"order_table_id"`
	Status       string `json:"status"`
}

// ChangeOrderStatusCommandHandler advances an order through its lifecycle.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status change command. The transition rules live on
// the order aggregate; the handler only loads, delegates, and persists.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	payload, err := json.Marshal(orderStatusChangedPayload{
		OrderID:      orderAggregate.ID().String(),
		OrderTableID: orderAggregate.OrderTableID().String(),
		Status:       orderAggregate.Status().String(),
	})
	if err != nil {
		return err
	}

	event := ports.NewIntegrationEvent(OrderStatusChangedEventType, payload)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
