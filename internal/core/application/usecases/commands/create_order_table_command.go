package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand represents a request to register a new order table.
// New tables start empty with zero guests.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderTableCommand creates a command to register an order table.
func NewCreateOrderTableCommand(orderTableID kernel.UUID) (CreateOrderTableCommand, error) {
	cmd := CreateOrderTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderTableID(orderTableID); err != nil {
		return CreateOrderTableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

// OrderTableID returns the identifier for the new table.
func (c CreateOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

func (c *CreateOrderTableCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	c.orderTableID = orderTableID
	return nil
}
