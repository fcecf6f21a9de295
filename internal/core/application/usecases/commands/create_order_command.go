package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order must contain at least one line item")
)

// OrderLine is one requested line of a new order: a menu reference and the
// quantity ordered.
type OrderLine struct {
	MenuID   kernel.UUID
	Quantity int64
}

// CreateOrderCommand represents a request to place a new order on a table.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderTableID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Requires valid identifiers and at least one line. Menu resolution and
// duplicate detection are the handler's responsibility.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderTableID kernel.UUID,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderTableID(orderTableID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderTableID returns the target table identifier.
func (c CreateOrderCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Lines returns the requested order lines in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	c.orderTableID = orderTableID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
