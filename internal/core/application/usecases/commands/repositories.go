// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest combination it needs, so tests only
// fake what a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderTableRepoFactory provides access to the order table repository within a transaction.
	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// TableGroupRepoFactory provides access to the table group repository within a transaction.
	TableGroupRepoFactory interface {
		TableGroupRepository() ports.TableGroupRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderActivityVerifierFactory provides the order-in-progress check bound
	// to the current transaction.
	OrderActivityVerifierFactory interface {
		OrderActivityVerifier() services.OrderActivityVerifier
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu-group-only operations.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	// MenuGroupUoWFactory creates new menu group unit of work instances.
	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW manages transactions for menu creation, which reads products
	// and menu groups and writes the menu aggregate.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW manages transactions for order operations, which read menus
	// and tables and write orders plus outbox events.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableRegistryUoW manages transactions for table mutations that are not
	// gated by the order-activity verification.
	TableRegistryUoW interface {
		TxManager
		OrderTableRepoFactory
	}

	// TableRegistryUoWFactory creates new table registry unit of work instances.
	TableRegistryUoWFactory interface {
		Create() TableRegistryUoW
	}

	// TableUoW manages transactions for single-table mutations gated by the
	// order-activity verification.
	TableUoW interface {
		TxManager
		OrderTableRepoFactory
		OrderActivityVerifierFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// GroupUoW manages transactions for table group formation and
	// dissolution across several tables.
	GroupUoW interface {
		TxManager
		OrderTableRepoFactory
		TableGroupRepoFactory
		OutboxRepoFactory
		OrderActivityVerifierFactory
	}

	// GroupUoWFactory creates new table group unit of work instances.
	GroupUoWFactory interface {
		Create() GroupUoW
	}
)
