// Package menurepo provides data transfer objects and mapping functions for
// menu persistence. A menu row owns its menu product rows; both are written
// and read together so no partial menu is observable.
package menurepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string
	Price       int64
	MenuGroupID uuid.UUID        `gorm:"type:uuid;index"`
	Products    []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO represents one product line owned by a menu row.
type MenuProductDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MenuID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int64
}

// TableName specifies the database table name for menu product lines.
func (MenuProductDTO) TableName() string {
	return "menu_products"
}

// fromDomain converts a menu aggregate to its database representation.
func fromDomain(m *menu.Menu) MenuDTO {
	products := m.Products()
	lines := make([]MenuProductDTO, 0, len(products))
	for _, mp := range products {
		lines = append(lines, MenuProductDTO{
			MenuID:    m.ID().Bytes(),
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity(),
		})
	}

	return MenuDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		Price:       m.Price().Amount(),
		MenuGroupID: m.MenuGroupID().Bytes(),
		Products:    lines,
	}
}

// toDomain converts a database DTO to a menu aggregate.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	menuGroupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	products := make([]menu.MenuProduct, 0, len(dto.Products))
	for _, line := range dto.Products {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		mp, lineErr := menu.NewMenuProduct(productID, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, menuGroupID, products)
}
