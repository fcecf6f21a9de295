package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/guard"
)

var ErrGroupTablesCommandIsNotConstructed = errors.New(
	"GroupTablesCommand must be created via NewGroupTablesCommand constructor",
)

// GroupTablesCommand represents a request to bind several tables into a
// new table group.
type GroupTablesCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID
	tableIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGroupTablesCommand creates a command to form a table group.
// Requires at least two table identifiers; occupancy, duplicate detection,
// and order activity are checked by the handler and the coordinator.
func NewGroupTablesCommand(tableGroupID kernel.UUID, tableIDs []kernel.UUID) (GroupTablesCommand, error) {
	cmd := GroupTablesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableGroupID(tableGroupID),
		cmd.setTableIDs(tableIDs),
	); err != nil {
		return GroupTablesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GroupTablesCommand) Validate() error {
	return c.guard.Validate(ErrGroupTablesCommandIsNotConstructed)
}

// TableGroupID returns the identifier for the new group.
func (c GroupTablesCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

// TableIDs returns the requested member table identifiers.
func (c GroupTablesCommand) TableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.tableIDs))
	copy(ids, c.tableIDs)
	return ids
}

func (c *GroupTablesCommand) setTableGroupID(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	c.tableGroupID = tableGroupID
	return nil
}

func (c *GroupTablesCommand) setTableIDs(tableIDs []kernel.UUID) error {
	if len(tableIDs) < 2 {
		return services.ErrInsufficientTablesForGroup
	}
	for _, id := range tableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.tableIDs = make([]kernel.UUID, len(tableIDs))
	copy(c.tableIDs, tableIDs)
	return nil
}
