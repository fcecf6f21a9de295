// Package table provides the OrderTable aggregate and the TableGroup entity.
//
// Key business rules:
//   - Tables are created empty with zero guests
//   - The guest count cannot change while the table is marked empty, and can
//     never be negative
//   - The empty flag cannot change while the table belongs to a table group
//   - Grouping and ungrouping are driven by services.TableGroupCoordinator,
//     which runs the order-in-progress verification before calling the
//     mutation primitives here; the aggregate itself does not re-check order
//     status, keeping the table domain independent of the order domain
package table
