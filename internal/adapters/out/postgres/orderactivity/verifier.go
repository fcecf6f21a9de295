// Package orderactivity implements the order-activity verification consumed
// by the table domain. It answers the "is this table's order in progress"
// query against the orders table without handing order aggregates to the
// table side.
package orderactivity

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderActivityVerifier answers order-in-progress checks with a count
// query. Bound to the caller's transaction by the unit of work, so together
// with the FOR UPDATE table row locks the check and the table mutation are
// observed atomically.
type GormOrderActivityVerifier struct {
	db *gorm.DB
}

// NewGormOrderActivityVerifier creates a verifier over the given connection.
func NewGormOrderActivityVerifier(db *gorm.DB) *GormOrderActivityVerifier {
	return &GormOrderActivityVerifier{db: db}
}

// IsOrderInProgress reports whether the table has an order in Cooking or
// Meal status.
func (v *GormOrderActivityVerifier) IsOrderInProgress(ctx context.Context, tableID kernel.UUID) (bool, error) {
	if err := tableID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := v.db.WithContext(ctx).
		Table("orders").
		Where("order_table_id = ? AND status IN ?",
			tableID.Bytes(),
			[]string{order.Cooking.String(), order.Meal.String()}).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
