package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to another
// status. The requested status arrives as its string form from the edge.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order status.
// An unknown status name fails here; whether the transition itself is
// allowed is decided by the order aggregate.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
