package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderTableRepository defines the persistence contract for order tables.
//
// Implementations bound to a unit of work must lock the returned rows for the
// duration of the transaction, so that the order-activity verification and
// the group-membership mutation are observed as one atomic step and no order
// creation can race past the check.
type OrderTableRepository interface {
	// Add persists a new order table.
	Add(ctx context.Context, aggregate *table.OrderTable) error

	// Update persists changes to an existing order table.
	Update(ctx context.Context, aggregate *table.OrderTable) error

	// Get retrieves an order table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetByIDs retrieves the tables whose identifiers resolve.
	// Unknown identifiers are silently skipped; callers compare the result
	// count against the request count to detect duplicates and unknowns.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error)

	// GetByGroupID retrieves all tables currently referencing a table group.
	GetByGroupID(ctx context.Context, tableGroupID kernel.UUID) ([]*table.OrderTable, error)
}

// TableGroupRepository defines the persistence contract for table groups.
// Group records are created on grouping and may persist as orphans after
// ungrouping; membership lives on the tables.
type TableGroupRepository interface {
	// Add persists a new table group.
	Add(ctx context.Context, aggregate *table.TableGroup) error

	// Get retrieves a table group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)
}
