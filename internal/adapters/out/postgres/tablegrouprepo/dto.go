// Package tablegrouprepo provides data transfer objects and mapping
// functions for table group persistence. Membership lives on the tables;
// a group row may persist as an orphan after ungrouping.
package tablegrouprepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableGroupDTO represents the database structure for persisting table groups.
type TableGroupDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for table group entities.
func (TableGroupDTO) TableName() string {
	return "table_groups"
}

// fromDomain converts a table group to its database representation.
func fromDomain(g *table.TableGroup) TableGroupDTO {
	return TableGroupDTO{ID: g.ID().Bytes()}
}

// toDomain converts a database DTO to a table group.
func toDomain(dto TableGroupDTO) (*table.TableGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTableGroup(id)
}
