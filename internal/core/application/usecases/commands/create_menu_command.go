package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
	ErrMenuNameIsRequired      = errors.New("menu name is required")
	ErrMenuProductsAreRequired = errors.New("menu must contain at least one menu product line")
)

// MenuProductLine is one requested line of a new menu: a product reference
// and the quantity of that product the menu bundles.
type MenuProductLine struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to assemble a new menu from a target
// price and a set of product lines.
//
// Example:
//
//	cmd, err := NewCreateMenuCommand(menuID, "Fried chicken set", 16000, groupID,
//	    []MenuProductLine{{ProductID: chickenID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	name        string
	price       kernel.Price
	menuGroupID kernel.UUID
	lines       []MenuProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to assemble a menu.
// Validates identifiers, the name, the target price, and that at least one
// product line is present. Product existence and price sufficiency are
// checked by the handler against stored products.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	priceMinorUnits int64,
	menuGroupID kernel.UUID,
	lines []MenuProductLine,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setName(name),
		cmd.setPrice(priceMinorUnits),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setLines(lines),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the identifier for the new menu.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the menu name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the requested menu price.
func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

// MenuGroupID returns the referenced menu group identifier.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Lines returns the requested product lines in request order.
func (c CreateMenuCommand) Lines() []MenuProductLine {
	lines := make([]MenuProductLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return ErrMenuNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(priceMinorUnits int64) error {
	price, err := kernel.NewPrice(priceMinorUnits)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setLines(lines []MenuProductLine) error {
	if len(lines) == 0 {
		return ErrMenuProductsAreRequired
	}
	c.lines = make([]MenuProductLine, len(lines))
	copy(c.lines, lines)
	return nil
}
