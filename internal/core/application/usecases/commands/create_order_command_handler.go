package commands

import (
	"context"
	"encoding/json"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"
)

// ErrMenuReferencesAreInvalid is returned when the requested order lines
// contain a duplicated or unknown menu identifier.
var ErrMenuReferencesAreInvalid = errs.NewValueIsInvalidError(
	"order line items must reference distinct existing menus",
)

// OrderCreatedEventType marks outbox events emitted when an order is placed.
const OrderCreatedEventType = "order.created"

type orderCreatedPayload struct {
	OrderID      string    `json:"order_id"`
	OrderTableID string    `json:"order_table_id"`
	Status       string    `json:"status"`
	OrderedAt    time.Time `json:"ordered_at"`
}

// CreateOrderCommandHandler assembles an order from stored menus.
//
// The resolved-menu count must equal the requested line count. Counting
// distinct resolved menus catches both unknown and duplicated menu
// references in a single pass.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lines := cmd.Lines()

	menuIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		menuIDs = append(menuIDs, line.MenuID)
	}

	resolved, err := uow.MenuRepository().CountByIDs(ctx, menuIDs)
	if err != nil {
		return err
	}
	if resolved != len(lines) {
		return ErrMenuReferencesAreInvalid
	}

	orderTable, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	lineItems := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		lineItem, liErr := order.NewLineItem(line.MenuID, line.Quantity)
		if liErr != nil {
			return liErr
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), orderTable.ID(), lineItems)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	payload, err := json.Marshal(orderCreatedPayload{
		OrderID:      newOrder.ID().String(),
		OrderTableID: newOrder.OrderTableID().String(),
		Status:       newOrder.Status().String(),
		OrderedAt:    newOrder.OrderedAt(),
	})
	if err != nil {
		return err
	}

	event := ports.NewIntegrationEvent(OrderCreatedEventType, payload)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
