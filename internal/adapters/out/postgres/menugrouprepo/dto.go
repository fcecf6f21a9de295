// Package menugrouprepo provides data transfer objects and mapping functions
// for menu group persistence.
package menugrouprepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuGroupDTO represents the database structure for persisting menu groups.
type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for menu group entities.
func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

// fromDomain converts a menu group to its database representation.
func fromDomain(g *menu.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   g.ID().Bytes(),
		Name: g.Name(),
	}
}

// toDomain converts a database DTO to a menu group.
func toDomain(dto MenuGroupDTO) (*menu.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuGroup(id, dto.Name)
}
