package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrMenuIsNotConstructed is returned when a Menu instance was not created
	// through the NewMenu factory method.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

	// ErrMenuProductIsNotConstructed is returned when a MenuProduct was not
	// created through NewMenuProduct.
	ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct constructor")

	// ErrMenuNameIsRequired is returned when a menu name is empty.
	ErrMenuNameIsRequired = errs.NewValueIsRequiredError("menu name")

	// ErrNoMenuProducts is returned when a menu is created without any
	// menu product lines.
	ErrNoMenuProducts = errs.NewValueIsRequiredError("menu must contain at least one menu product")
)

// MenuProduct is a line of a menu: a reference to a product and the quantity
// of that product the menu bundles. It is an immutable value object owned by
// exactly one Menu.
type MenuProduct struct {
	productID kernel.UUID
	quantity  int64

	isConstructed bool
}

// NewMenuProduct creates a menu line for the given product and quantity.
// Quantity must be non-negative.
func NewMenuProduct(productID kernel.UUID, quantity int64) (MenuProduct, error) {
	if err := productID.Validate(); err != nil {
		return MenuProduct{}, err
	}
	if quantity < 0 {
		return MenuProduct{}, errs.NewValueIsOutOfRangeError("menu product quantity", quantity, 0, int64(1<<62))
	}

	return MenuProduct{
		productID:     productID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuProduct was created through NewMenuProduct.
func (mp MenuProduct) Validate() error {
	if !mp.isConstructed {
		return ErrMenuProductIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

// Quantity returns how many units of the product the menu bundles.
func (mp MenuProduct) Quantity() int64 {
	return mp.quantity
}

// Menu represents a priced bundle of products. It is the aggregate root that
// exclusively owns its MenuProduct lines: lines are created with the menu and
// share its lifetime.
type Menu struct {
	id          kernel.UUID
	name        string
	price       kernel.Price
	menuGroupID kernel.UUID
	products    []MenuProduct

	isConstructed bool
}

// NewMenu creates a Menu with its lines, validating every structural rule:
// valid identifiers, non-empty name, constructed price, and at least one line.
//
// Price sufficiency against the referenced products is the caller's
// responsibility (see services.PriceValidator); the aggregate cannot see
// product prices.
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	products []MenuProduct,
) (*Menu, error) {
	m := &Menu{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setProducts(products),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu reconstructs a Menu from persistence. The stored menu already
// passed the creation-time price check, so only structural validation applies.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	products []MenuProduct,
) (*Menu, error) {
	return NewMenu(id, name, price, menuGroupID, products)
}

// Validate ensures the Menu was created through NewMenu.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// IsEqual compares two menus by identifier.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the fixed menu price.
func (m *Menu) Price() kernel.Price {
	return m.price
}

// MenuGroupID returns the identifier of the menu group this menu belongs to.
func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// Products returns a copy of the menu's lines in their original order.
func (m *Menu) Products() []MenuProduct {
	products := make([]MenuProduct, len(m.products))
	copy(products, m.products)
	return products
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return ErrMenuNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setProducts(products []MenuProduct) error {
	if len(products) == 0 {
		return ErrNoMenuProducts
	}
	for _, mp := range products {
		if err := mp.Validate(); err != nil {
			return err
		}
	}
	m.products = make([]MenuProduct, len(products))
	copy(m.products, products)
	return nil
}
