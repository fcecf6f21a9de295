package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrUngroupTablesCommandIsNotConstructed = errors.New(
	"UngroupTablesCommand must be created via NewUngroupTablesCommand constructor",
)

// UngroupTablesCommand represents a request to dissolve a table group.
type UngroupTablesCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUngroupTablesCommand creates a command to dissolve a table group.
func NewUngroupTablesCommand(tableGroupID kernel.UUID) (UngroupTablesCommand, error) {
	cmd := UngroupTablesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableGroupID(tableGroupID); err != nil {
		return UngroupTablesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UngroupTablesCommand) Validate() error {
	return c.guard.Validate(ErrUngroupTablesCommandIsNotConstructed)
}

// TableGroupID returns the group to dissolve.
func (c UngroupTablesCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

func (c *UngroupTablesCommand) setTableGroupID(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	c.tableGroupID = tableGroupID
	return nil
}
