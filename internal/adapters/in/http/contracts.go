package http

import "time"

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the JSON body returned when a resource is created.
type Created struct {
	ID string `json:"id"`
}

// NewProduct is the request body for creating a product.
type NewProduct struct {
	Name            string `json:"name"`
	PriceMinorUnits int64  `json:"price"`
}

// NewMenuGroup is the request body for creating a menu group.
type NewMenuGroup struct {
	Name string `json:"name"`
}

// MenuProduct is one product line of a menu.
type MenuProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// NewMenu is the request body for creating a menu.
type NewMenu struct {
	Name            string        `json:"name"`
	PriceMinorUnits int64         `json:"price"`
	MenuGroupID     string        `json:"menu_group_id"`
	MenuProducts    []MenuProduct `json:"menu_products"`
}

// Menu is one menu in a listing response.
type Menu struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	PriceMinorUnits int64         `json:"price"`
	MenuGroupID     string        `json:"menu_group_id"`
	MenuProducts    []MenuProduct `json:"menu_products"`
}

// OrderTable is one table in a listing response.
type OrderTable struct {
	ID             string  `json:"id"`
	NumberOfGuests int     `json:"number_of_guests"`
	Empty          bool    `json:"empty"`
	TableGroupID   *string `json:"table_group_id,omitempty"`
}

// ChangeEmpty is the request body for changing a table's occupancy.
type ChangeEmpty struct {
	Empty bool `json:"empty"`
}

// ChangeGuests is the request body for changing a table's guest count.
type ChangeGuests struct {
	NumberOfGuests int `json:"number_of_guests"`
}

// OrderLineItem is one line of an order.
type OrderLineItem struct {
	MenuID   string `json:"menu_id"`
	Quantity int64  `json:"quantity"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	OrderTableID string          `json:"order_table_id"`
	LineItems    []OrderLineItem `json:"line_items"`
}

// Order is one order in a listing response.
type Order struct {
	ID           string          `json:"id"`
	OrderTableID string          `json:"order_table_id"`
	Status       string          `json:"status"`
	OrderedAt    time.Time       `json:"ordered_at"`
	LineItems    []OrderLineItem `json:"line_items"`
}

// ChangeStatus is the request body for advancing an order's status.
type ChangeStatus struct {
	Status string `json:"status"`
}

// NewTableGroup is the request body for grouping tables.
type NewTableGroup struct {
	OrderTableIDs []string `json:"order_table_ids"`
}
