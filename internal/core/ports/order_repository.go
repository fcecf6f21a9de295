package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are fixed at creation; only the status can change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
