// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its line item rows; line items are
// fixed at creation and never updated.
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored in its string form so the table reads naturally.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID uuid.UUID          `gorm:"type:uuid;index"`
	Status       string             `gorm:"index"`
	OrderedAt    time.Time
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO represents one line item owned by an order row.
type OrderLineItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	MenuID   uuid.UUID `gorm:"type:uuid"`
	Quantity int64
}

// TableName specifies the database table name for order line items.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := o.LineItems()
	lines := make([]OrderLineItemDTO, 0, len(items))
	for _, li := range items {
		lines = append(lines, OrderLineItemDTO{
			OrderID:  o.ID().Bytes(),
			MenuID:   li.MenuID().Bytes(),
			Quantity: li.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		OrderTableID: o.OrderTableID().Bytes(),
		Status:       o.Status().String(),
		OrderedAt:    o.OrderedAt(),
		LineItems:    lines,
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderTableID, err := kernel.UUIDFromBytes(dto.OrderTableID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, line := range dto.LineItems {
		menuID, lineErr := kernel.UUIDFromBytes(line.MenuID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		li, lineErr := order.NewLineItem(menuID, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(id, orderTableID, status, dto.OrderedAt, items)
}
