package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableGuestsCommandIsNotConstructed = errors.New(
	"ChangeTableGuestsCommand must be created via NewChangeTableGuestsCommand constructor",
)

// ChangeTableGuestsCommand represents a request to set a table's guest count.
type ChangeTableGuestsCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewChangeTableGuestsCommand creates a command to set the guest count.
// The count bounds and the empty-table rule are enforced by the aggregate,
// so a negative count surfaces from Handle rather than here.
func NewChangeTableGuestsCommand(orderTableID kernel.UUID, numberOfGuests int) (ChangeTableGuestsCommand, error) {
	cmd := ChangeTableGuestsCommand{
		numberOfGuests: numberOfGuests,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderTableID(orderTableID); err != nil {
		return ChangeTableGuestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTableGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableGuestsCommandIsNotConstructed)
}

// OrderTableID returns the target table identifier.
func (c ChangeTableGuestsCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// NumberOfGuests returns the requested guest count.
func (c ChangeTableGuestsCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *ChangeTableGuestsCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	c.orderTableID = orderTableID
	return nil
}
