package queries

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the order listing straight from the
// database, bypassing the aggregate layer.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by ID and each carries its
// line items. The status is returned in its string form.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_table_id,
			status,
			ordered_at
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderTableID uuid.UUID
		var status string
		var orderedAt time.Time

		if err = rows.Scan(&id, &orderTableID, &status, &orderedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tableID, idErr := kernel.UUIDFromBytes(orderTableID[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(orders)
		orders = append(orders, GetAllOrdersQueryResponse{
			ID:           orderID,
			OrderTableID: tableID,
			Status:       status,
			OrderedAt:    orderedAt,
			LineItems:    make([]OrderLineItemResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			quantity
		FROM order_line_items
		ORDER BY order_id, menu_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID, menuID uuid.UUID
		var quantity int64

		if err = lineRows.Scan(&orderID, &menuID, &quantity); err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		lineMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}
		orders[i].LineItems = append(orders[i].LineItems, OrderLineItemResponse{
			MenuID:   lineMenuID,
			Quantity: quantity,
		})
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
