// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Row-level locking for table repositories inside transactions
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// Perform repository operations
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within same transaction
//	if err := uow.TableGroupRepository().Add(ctx, group); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.OrderTableRepository().Update(ctx, table); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - OrderTableRepository locks rows with FOR UPDATE inside a transaction,
//     so activity checks and table mutations observe a consistent state
package postgres

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderactivity"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/tablegrouprepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits
// or implementing the outbox pattern for reliable event processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// All tracked aggregates and their modifications become permanent in the database.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Database returns to its state before the transaction began.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction if one exists, otherwise the main
// database connection for immediate execution.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ProductRepository provides access to product persistence operations within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// MenuRepository provides access to menu persistence operations within the unit of work.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn(), uow)
}

// MenuGroupRepository provides access to menu group persistence operations within the unit of work.
func (uow *GormUnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return menugrouprepo.NewGormMenuGroupRepository(uow.conn(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
//
// The returned repository automatically tracks all order aggregates that are
// added or updated, making them available to post-transaction processing.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// OrderTableRepository provides access to order table persistence operations
// within the unit of work. When a transaction is active the repository reads
// rows with FOR UPDATE, holding the lock until commit or rollback so that a
// concurrent operation cannot mutate a table between a check and its update.
func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return tablerepo.NewGormOrderTableRepository(uow.conn(), uow, uow.tx != nil)
}

// TableGroupRepository provides access to table group persistence operations within the unit of work.
func (uow *GormUnitOfWork) TableGroupRepository() ports.TableGroupRepository {
	return tablegrouprepo.NewGormTableGroupRepository(uow.conn(), uow)
}

// OutboxRepository provides access to the transactional outbox within the unit of work.
// Events added through it commit or roll back together with the state changes
// of the same business operation.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// OrderActivityVerifier returns an order-activity verifier bound to the
// current transaction.
func (uow *GormUnitOfWork) OrderActivityVerifier() services.OrderActivityVerifier {
	return orderactivity.NewGormOrderActivityVerifier(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
