package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its line items.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderLineItemResponse is one line of an order in a query response.
type OrderLineItemResponse struct {
	MenuID   kernel.UUID
	Quantity int64
}

// GetAllOrdersQueryResponse represents one order in the listing.
type GetAllOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderTableID kernel.UUID
	Status       string
	OrderedAt    time.Time
	LineItems    []OrderLineItemResponse
}
