package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllOrderTablesQueryIsNotConstructed = errors.New(
	"GetAllOrderTablesQuery must be created via NewGetAllOrderTablesQuery constructor",
)

// GetAllOrderTablesQuery retrieves every order table.
type GetAllOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrderTablesQuery creates a query to retrieve all order tables.
func NewGetAllOrderTablesQuery() GetAllOrderTablesQuery {
	return GetAllOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderTablesQueryIsNotConstructed)
}

// GetAllOrderTablesQueryResponse represents one order table in the listing.
// TableGroupID is nil for ungrouped tables.
type GetAllOrderTablesQueryResponse struct {
	ID             kernel.UUID
	NumberOfGuests int
	Empty          bool
	TableGroupID   *kernel.UUID
}
