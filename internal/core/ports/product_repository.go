// Package ports defines the contracts between the kitchenpos core and its
// infrastructure: repositories, the unit of work, and the integration event
// publisher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
