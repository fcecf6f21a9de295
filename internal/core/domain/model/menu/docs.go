// Package menu provides the Menu aggregate: a sellable bundle of products
// offered at a fixed price, together with its MenuProduct lines and the
// MenuGroup reference it belongs to.
//
// Key business rules:
//   - A menu must contain at least one menu product line
//   - The menu price must not exceed the sum of its constituent product
//     prices multiplied by their quantities; this is checked once at creation
//     time and never re-validated against later product price changes
//   - Menu lines are fixed at creation
//
// The price-sufficiency check itself lives in the services package because it
// needs the referenced products; this package enforces the structural rules.
package menu
