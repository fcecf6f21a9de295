package order

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrNoLineItems is returned when an order is created without any line items.
	ErrNoLineItems = errs.NewValueIsRequiredError("order must contain at least one line item")

	// ErrOrderedTimeIsRequired is returned when restoring an order with a zero
	// creation timestamp.
	ErrOrderedTimeIsRequired = errs.NewValueIsRequiredError("ordered time")
)

// LineItem is a (menu, quantity) pair within one order. It is an immutable
// value object owned by exactly one Order.
type LineItem struct {
	menuID   kernel.UUID
	quantity int64

	isConstructed bool
}

// NewLineItem creates a line item for the given menu and quantity.
// Quantity must be positive.
func NewLineItem(menuID kernel.UUID, quantity int64) (LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("line item quantity", quantity, 1, int64(1<<62))
	}

	return LineItem{
		menuID:        menuID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// MenuID returns the referenced menu's identifier.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// Order represents a customer order placed at an order table. It is the
// aggregate root that exclusively owns its line items: they are created with
// the order, fixed afterwards, and share its lifetime.
//
// Invariants:
//   - Must have a valid unique identifier and order table reference
//   - Must contain at least one line item
//   - The order table reference and the creation timestamp never change
//   - Status transitions follow the Status state machine
type Order struct {
	id           kernel.UUID
	orderTableID kernel.UUID
	status       Status
	orderedAt    time.Time
	lineItems    []LineItem

	isConstructed bool
}

// NewOrder creates an Order in Cooking status with the current timestamp.
//
// Example:
//
//	item, _ := order.NewLineItem(menuID, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), tableID, []order.LineItem{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, orderTableID kernel.UUID, lineItems []LineItem) (*Order, error) {
	o := &Order{
		status:        Cooking,
		orderedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderTableID(orderTableID),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and creation timestamp.
func RestoreOrder(
	id kernel.UUID,
	orderTableID kernel.UUID,
	status Status,
	orderedAt time.Time,
	lineItems []LineItem,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderTableID(orderTableID),
		o.setStatus(status),
		o.setOrderedAt(orderedAt),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderTableID returns the identifier of the table the order was placed at.
func (o *Order) OrderTableID() kernel.UUID {
	return o.orderTableID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// LineItems returns a copy of the order's line items in their original order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// IsInProgress reports whether the order still blocks table mutations.
func (o *Order) IsInProgress() bool {
	return o.status.IsInProgress()
}

// ChangeStatus transitions the order to the requested status.
//
// The transition is delegated to the Status state machine: it fails only when
// the current status is Completion, regardless of the requested target.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.Change(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	o.orderTableID = orderTableID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return ErrOrderedTimeIsRequired
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrNoLineItems
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
