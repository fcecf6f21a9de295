package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// CreateProductCommand represents a request to register a new product with
// its name and price in minor units.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
// Validates that the identifier is valid, the name is not empty, and the
// price is a non-negative amount of minor units.
func NewCreateProductCommand(productID kernel.UUID, name string, priceMinorUnits int64) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(priceMinorUnits),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the validated product price.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(priceMinorUnits int64) error {
	price, err := kernel.NewPrice(priceMinorUnits)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}
