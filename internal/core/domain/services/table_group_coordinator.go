package services

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrInsufficientTablesForGroup is returned when fewer than two tables
	// are requested for a group.
	ErrInsufficientTablesForGroup = errs.NewValueIsInvalidError("a table group requires at least two tables")

	// ErrTableOccupiedOrGrouped is returned when a table requested for
	// grouping is not empty or already belongs to another group.
	ErrTableOccupiedOrGrouped = errs.NewStateConflictError("table is occupied or already grouped")

	// ErrOrderActivityVerifierIsRequired is returned when the coordinator is
	// constructed without a verifier.
	ErrOrderActivityVerifierIsRequired = errs.NewValueIsRequiredError("order activity verifier")
)

// OrderActivityVerifier answers whether a table currently has an order in
// Cooking or Meal status. It is the verification signal that decouples the
// table domain from the order domain: the coordinator publishes a query per
// table and consumes the outcome, without ever importing order types.
//
// Implementations must answer within the caller's transactional context so
// that the check and the group mutation are observed as one atomic step.
type OrderActivityVerifier interface {
	IsOrderInProgress(ctx context.Context, tableID kernel.UUID) (bool, error)
}

// TableGroupCoordinator is the domain service that forms and dissolves table
// groups.
//
// Business rules:
//   - A group needs at least two tables
//   - Every table must be empty and ungrouped before grouping
//   - No table with an order in progress may be grouped or ungrouped
//   - Group formation and dissolution are all-or-nothing: verification of
//     every member completes before any table is mutated
type TableGroupCoordinator struct {
	verifier OrderActivityVerifier
}

// NewTableGroupCoordinator creates a coordinator backed by the given
// order-activity verifier.
func NewTableGroupCoordinator(verifier OrderActivityVerifier) (TableGroupCoordinator, error) {
	if verifier == nil {
		return TableGroupCoordinator{}, ErrOrderActivityVerifierIsRequired
	}
	return TableGroupCoordinator{verifier: verifier}, nil
}

// Group binds every table to the given group.
//
// All preconditions run before any mutation: group validity, minimum size,
// per-table emptiness/ungrouped state, and the order-activity verification
// for each member. On success every table references the group and is marked
// occupied.
//
// Returns:
//   - ErrInsufficientTablesForGroup when fewer than two tables are given
//   - ErrTableOccupiedOrGrouped when a table is occupied or already grouped
//   - table.ErrTableHasActiveOrder when verification finds an order in progress
func (c TableGroupCoordinator) Group(
	ctx context.Context,
	group *table.TableGroup,
	tables []*table.OrderTable,
) error {
	if err := group.Validate(); err != nil {
		return err
	}

	if len(tables) < 2 {
		return ErrInsufficientTablesForGroup
	}

	for _, t := range tables {
		if err := c.verifyGroupable(ctx, t); err != nil {
			return err
		}
	}

	for _, t := range tables {
		if err := t.AssignGroup(group.ID()); err != nil {
			return err
		}
	}

	return nil
}

// Ungroup clears the group reference on every member table.
//
// Every member passes the order-activity verification before any reference is
// cleared; a single active order aborts the whole dissolution with
// table.ErrTableHasActiveOrder, leaving all members grouped.
func (c TableGroupCoordinator) Ungroup(ctx context.Context, tables []*table.OrderTable) error {
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
		if err := c.verifyNoActiveOrder(ctx, t.ID()); err != nil {
			return err
		}
	}

	for _, t := range tables {
		t.Ungroup()
	}

	return nil
}

func (c TableGroupCoordinator) verifyGroupable(ctx context.Context, t *table.OrderTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !t.IsEmpty() || t.IsGrouped() {
		return ErrTableOccupiedOrGrouped
	}
	return c.verifyNoActiveOrder(ctx, t.ID())
}

func (c TableGroupCoordinator) verifyNoActiveOrder(ctx context.Context, tableID kernel.UUID) error {
	inProgress, err := c.verifier.IsOrderInProgress(ctx, tableID)
	if err != nil {
		return err
	}
	if inProgress {
		return table.ErrTableHasActiveOrder
	}
	return nil
}
