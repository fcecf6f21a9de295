package ports

import (
	"context"

	"kitchenpos/internal/core/domain/services"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Every public operation of the core runs inside exactly one unit of work:
// either all of its state changes commit together or none become visible.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// MenuRepository returns a MenuRepository bound to the current transaction.
	MenuRepository() MenuRepository

	// MenuGroupRepository returns a MenuGroupRepository bound to the current transaction.
	MenuGroupRepository() MenuGroupRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrderTableRepository returns an OrderTableRepository bound to the current
	// transaction. Rows it returns stay locked until commit or rollback.
	OrderTableRepository() OrderTableRepository

	// TableGroupRepository returns a TableGroupRepository bound to the current transaction.
	TableGroupRepository() TableGroupRepository

	// OutboxRepository returns an OutboxRepository bound to the current transaction.
	OutboxRepository() OutboxRepository

	// OrderActivityVerifier returns an order-activity verifier bound to the
	// current transaction, so the in-progress check and the mutation it gates
	// commit or fail together.
	OrderActivityVerifier() services.OrderActivityVerifier
}
