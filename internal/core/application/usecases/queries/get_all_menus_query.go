package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllMenusQueryIsNotConstructed = errors.New(
	"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
)

// GetAllMenusQuery retrieves every menu with its product lines.
//
// Example:
//
//	query := NewGetAllMenusQuery()
//	handler := NewGetAllMenusQueryHandler(db)
//	menus, err := handler.Handle(ctx, query)
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenusQuery creates a query to retrieve all menus.
func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

// MenuProductResponse is one product line of a menu in a query response.
type MenuProductResponse struct {
	ProductID kernel.UUID
	Quantity  int64
}

// GetAllMenusQueryResponse represents one menu in the listing.
type GetAllMenusQueryResponse struct {
	ID              kernel.UUID
	Name            string
	PriceMinorUnits int64
	MenuGroupID     kernel.UUID
	Products        []MenuProductResponse
}
