package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrMenuGroupIsNotConstructed is returned when a MenuGroup instance was
	// not created through the NewMenuGroup factory method.
	ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")

	// ErrMenuGroupNameIsRequired is returned when a menu group name is empty.
	ErrMenuGroupNameIsRequired = errs.NewValueIsRequiredError("menu group name")
)

// MenuGroup is an opaque grouping of menus. The ordering core only resolves
// menu groups by identifier; it carries no behavior of its own.
type MenuGroup struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewMenuGroup creates a MenuGroup with a validated identifier and name.
func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrMenuGroupNameIsRequired
	}

	return &MenuGroup{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreMenuGroup reconstructs a MenuGroup from persistence.
func RestoreMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

// Validate ensures the MenuGroup was created through NewMenuGroup.
func (g *MenuGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrMenuGroupIsNotConstructed
	}
	return nil
}

// ID returns the menu group's unique identifier.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the menu group name.
func (g *MenuGroup) Name() string {
	return g.name
}
