// Package tablerepo provides data transfer objects and mapping functions for
// order table persistence. Repositories bound to a transaction read rows
// with FOR UPDATE locks so the order-activity check and the membership
// mutation commit as one atomic step.
package tablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// OrderTableDTO represents the database structure for persisting order tables.
// TableGroupID is NULL for ungrouped tables.
type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NumberOfGuests int
	Empty          bool
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order table entities.
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// fromDomain converts an order table aggregate to its database representation.
func fromDomain(t *table.OrderTable) OrderTableDTO {
	var tableGroupID *uuid.UUID
	if id := t.TableGroupID(); id != nil {
		raw := id.Bytes()
		tableGroupID = &raw
	}

	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
		TableGroupID:   tableGroupID,
	}
}

// toDomain converts a database DTO to an order table aggregate.
func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableGroupID *kernel.UUID
	if dto.TableGroupID != nil {
		gID, groupErr := kernel.UUIDFromBytes((*dto.TableGroupID)[:])
		if groupErr != nil {
			return nil, groupErr
		}
		tableGroupID = &gID
	}

	return table.RestoreOrderTable(id, dto.NumberOfGuests, dto.Empty, tableGroupID)
}
