// Package product provides the Product entity: a sellable item with a name and
// an exact price. Products are immutable within the ordering core; price
// changes, if any, happen outside it and never re-validate existing menus.
package product

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductNameIsRequired is returned when a product name is empty.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product represents a sellable product with a validated price.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Price must be a constructed, non-negative Price
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Price

	isConstructed bool
}

// NewProduct creates a Product, validating identifier, name, and price.
func NewProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Products carry no lifecycle state, so restoration applies the same
// validation as NewProduct.
func RestoreProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p *Product) Price() kernel.Price {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
