// Package productrepo provides data transfer objects and mapping functions
// for product persistence. It implements the repository pattern for the
// product aggregate, converting between domain entities and database rows.
package productrepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price int64
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price().Amount(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price)
}
