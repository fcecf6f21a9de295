package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMenusQueryHandler reads the menu listing straight from the database,
// bypassing the aggregate layer.
type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenusQueryHandler creates a handler for menu listings.
func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

// Handle executes the query. Menus are sorted by ID and each carries its
// product lines.
func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]GetAllMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus := make([]GetAllMenusQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id
		FROM menus
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, menuGroupID uuid.UUID
		var name string
		var price int64

		if err = rows.Scan(&id, &name, &price, &menuGroupID); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		groupID, idErr := kernel.UUIDFromBytes(menuGroupID[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(menus)
		menus = append(menus, GetAllMenusQueryResponse{
			ID:              menuID,
			Name:            name,
			PriceMinorUnits: price,
			MenuGroupID:     groupID,
			Products:        make([]MenuProductResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			product_id,
			quantity
		FROM menu_products
		ORDER BY menu_id, product_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var menuID, productID uuid.UUID
		var quantity int64

		if err = lineRows.Scan(&menuID, &productID, &quantity); err != nil {
			return nil, err
		}

		i, ok := index[menuID]
		if !ok {
			continue
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		menus[i].Products = append(menus[i].Products, MenuProductResponse{
			ProductID: lineProductID,
			Quantity:  quantity,
		})
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
