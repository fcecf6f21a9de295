package table

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
)

// ErrTableGroupIsNotConstructed is returned when a TableGroup instance was
// not created through the NewTableGroup factory method.
var ErrTableGroupIsNotConstructed = errors.New("TableGroup must be created via NewTableGroup constructor")

// TableGroup is an association of two or more order tables sharing one
// combined ordering context, for example merged parties. The group record
// itself carries only identity; membership lives on the tables, which
// reference the group without being owned by it. An ungrouped TableGroup
// record may persist as an orphan.
type TableGroup struct {
	id kernel.UUID

	isConstructed bool
}

// NewTableGroup creates a TableGroup with a validated identifier.
func NewTableGroup(id kernel.UUID) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &TableGroup{
		id:            id,
		isConstructed: true,
	}, nil
}

// RestoreTableGroup reconstructs a TableGroup from persistence.
func RestoreTableGroup(id kernel.UUID) (*TableGroup, error) {
	return NewTableGroup(id)
}

// Validate ensures the TableGroup was created through NewTableGroup.
func (g *TableGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrTableGroupIsNotConstructed
	}
	return nil
}

// IsEqual compares two table groups by identifier.
func (g *TableGroup) IsEqual(other *TableGroup) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the table group's unique identifier.
func (g *TableGroup) ID() kernel.UUID {
	return g.id
}
