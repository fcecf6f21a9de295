package table

import (
	"errors"
	"math"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrOrderTableIsNotConstructed is returned when an OrderTable instance
	// was not created through the NewOrderTable factory method.
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable constructor")

	// ErrTableIsEmpty is returned when the guest count changes on a table
	// that is marked empty. A table must be occupied first.
	ErrTableIsEmpty = errs.NewStateConflictError("guest count cannot change while the table is marked empty")

	// ErrTableIsGrouped is returned when a mutation requires an ungrouped
	// table: changing the empty flag or joining another group.
	ErrTableIsGrouped = errs.NewStateConflictError("table belongs to a table group")

	// ErrTableHasActiveOrder is returned when a table mutation is blocked by
	// an order in Cooking or Meal status. The check itself runs in the
	// application layer through the order-activity verification; this package
	// only names the failure.
	ErrTableHasActiveOrder = errs.NewStateConflictError("table has an order in progress")
)

// OrderTable represents a physical dining table tracked for occupancy, guest
// count, and table group membership. Tables are never deleted; group
// membership is a non-owning reference cleared on ungroup.
type OrderTable struct {
	id             kernel.UUID
	numberOfGuests int
	empty          bool
	tableGroupID   *kernel.UUID

	isConstructed bool
}

// NewOrderTable creates a table in its initial state: empty, zero guests,
// ungrouped.
func NewOrderTable(id kernel.UUID) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &OrderTable{
		id:            id,
		empty:         true,
		isConstructed: true,
	}, nil
}

// RestoreOrderTable reconstructs a table from persistence.
func RestoreOrderTable(
	id kernel.UUID,
	numberOfGuests int,
	empty bool,
	tableGroupID *kernel.UUID,
) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if numberOfGuests < 0 {
		return nil, errs.NewValueIsOutOfRangeError("numberOfGuests", numberOfGuests, 0, math.MaxInt)
	}
	if tableGroupID != nil {
		if err := tableGroupID.Validate(); err != nil {
			return nil, err
		}
		groupID := *tableGroupID
		tableGroupID = &groupID
	}

	return &OrderTable{
		id:             id,
		numberOfGuests: numberOfGuests,
		empty:          empty,
		tableGroupID:   tableGroupID,
		isConstructed:  true,
	}, nil
}

// Validate ensures the OrderTable was created through its constructors.
func (t *OrderTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTableIsNotConstructed
	}
	return nil
}

// IsEqual compares two tables by identifier.
func (t *OrderTable) IsEqual(other *OrderTable) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// NumberOfGuests returns the current guest count.
func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// IsEmpty reports whether the table is marked empty.
func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

// IsGrouped reports whether the table belongs to a table group.
func (t *OrderTable) IsGrouped() bool {
	return t.tableGroupID != nil
}

// TableGroupID returns the owning group's identifier, or nil when the table
// is ungrouped.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	if t.tableGroupID == nil {
		return nil
	}
	groupID := *t.tableGroupID
	return &groupID
}

// ChangeEmpty sets the empty flag.
//
// Fails with ErrTableIsGrouped while the table belongs to a group; grouped
// tables are implicitly occupied and leave occupancy to the group lifecycle.
// The order-in-progress rule for this operation is enforced by the caller
// through the order-activity verification before this method is reached.
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if t.IsGrouped() {
		return ErrTableIsGrouped
	}

	t.empty = empty
	return nil
}

// ChangeNumberOfGuests sets the guest count.
//
// Fails with a range error for negative counts and with ErrTableIsEmpty when
// the table is currently marked empty. Invalid input is never coerced.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsOutOfRangeError("numberOfGuests", numberOfGuests, 0, math.MaxInt)
	}
	if t.empty {
		return ErrTableIsEmpty
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

// AssignGroup binds the table to a table group and clears the empty flag;
// tables in a group are implicitly occupied for ordering.
//
// This is the mutation primitive called by the group coordinator after its
// precondition checks; it only re-checks what the aggregate itself can see.
func (t *OrderTable) AssignGroup(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	if t.IsGrouped() {
		return ErrTableIsGrouped
	}

	groupID := tableGroupID
	t.tableGroupID = &groupID
	t.empty = false
	return nil
}

// Ungroup clears the table's group reference. The table stays occupied.
func (t *OrderTable) Ungroup() {
	t.tableGroupID = nil
}
