package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrderTablesQueryHandler reads the table listing straight from the
// database, bypassing the aggregate layer.
type GetAllOrderTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrderTablesQueryHandler creates a handler for table listings.
func NewGetAllOrderTablesQueryHandler(db *gorm.DB) GetAllOrderTablesQueryHandler {
	return GetAllOrderTablesQueryHandler{db: db}
}

// Handle executes the query. Tables are sorted by ID.
func (h GetAllOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderTablesQuery,
) ([]GetAllOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number_of_guests,
			empty,
			table_group_id
		FROM order_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var numberOfGuests int
		var empty bool
		var tableGroupID *uuid.UUID

		if err = rows.Scan(&id, &numberOfGuests, &empty, &tableGroupID); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetAllOrderTablesQueryResponse{
			ID:             tableID,
			NumberOfGuests: numberOfGuests,
			Empty:          empty,
		}
		if tableGroupID != nil {
			groupID, idErr := kernel.UUIDFromBytes(tableGroupID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.TableGroupID = &groupID
		}

		tables = append(tables, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
