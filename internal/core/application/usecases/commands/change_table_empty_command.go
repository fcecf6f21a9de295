package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeTableEmptyCommand must be created via NewChangeTableEmptyCommand constructor",
)

// ChangeTableEmptyCommand represents a request to change a table's empty flag.
type ChangeTableEmptyCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	empty        bool

	guard guard.ConstructorGuard
}

// NewChangeTableEmptyCommand creates a command to change the empty flag.
func NewChangeTableEmptyCommand(orderTableID kernel.UUID, empty bool) (ChangeTableEmptyCommand, error) {
	cmd := ChangeTableEmptyCommand{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderTableID(orderTableID); err != nil {
		return ChangeTableEmptyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableEmptyCommandIsNotConstructed)
}

// OrderTableID returns the target table identifier.
func (c ChangeTableEmptyCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Empty returns the requested flag value.
func (c ChangeTableEmptyCommand) Empty() bool {
	return c.empty
}

func (c *ChangeTableEmptyCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	c.orderTableID = orderTableID
	return nil
}
