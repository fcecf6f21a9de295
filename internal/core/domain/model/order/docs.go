// Package order provides the Order aggregate of the kitchenpos core and its
// cooking lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the order table reference, the
//     creation timestamp, and the fixed set of line items
//   - LineItem: a (menu, quantity) pair owned by exactly one order
//   - Status: the state machine Cooking -> Meal -> Completion
//
// Key business rules:
//   - Orders are created in Cooking status with at least one line item
//   - Line items cannot be added or removed after creation
//   - A status change is rejected only when the current status is Completion;
//     the target status is unconstrained among the valid statuses, so a
//     kitchen may move an order back from Meal to Cooking
package order
