package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
// A menu is stored together with its menu product lines.
type MenuRepository interface {
	// Add persists a new menu aggregate with all of its lines.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu aggregate by its unique identifier,
	// including its lines.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// CountByIDs returns how many of the given identifiers resolve to stored
	// menus. Duplicate identifiers are counted once, which lets callers
	// detect both unknown and duplicated menu references in one pass.
	CountByIDs(ctx context.Context, ids []kernel.UUID) (int, error)
}

// MenuGroupRepository defines the persistence contract for menu groups.
// The core treats menu groups as an opaque lookup target.
type MenuGroupRepository interface {
	// Add persists a new menu group.
	Add(ctx context.Context, aggregate *menu.MenuGroup) error

	// Get retrieves a menu group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error)
}
