// Package services contains domain services: business logic that spans
// aggregates and therefore cannot live on a single entity.
//
// PriceValidator performs the pure price arithmetic behind the menu pricing
// invariant. TableGroupCoordinator forms and dissolves table groups, gating
// both on the order-in-progress verification it receives through a narrow
// injected collaborator so that the table domain never depends on the order
// domain.
package services
