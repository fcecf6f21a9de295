package commands_test

import (
	"context"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mock repositories and units of work for the handler tests in this
// package. Each handler declares a narrow unit of work, so a test wires only
// the repository accessors its handler actually calls.

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}
func (m *MockMenuRepository) CountByIDs(ctx context.Context, ids []kernel.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, aggregate *menu.MenuGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuGroup), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}
func (m *MockOrderTableRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}
func (m *MockOrderTableRepository) GetByGroupID(ctx context.Context, tableGroupID kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, tableGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

type MockTableGroupRepository struct{ mock.Mock }

func (m *MockTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.TableGroup), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, event ports.IntegrationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.IntegrationEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.IntegrationEvent), args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderActivityVerifier struct{ mock.Mock }

func (m *MockOrderActivityVerifier) IsOrderInProgress(ctx context.Context, tableID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tableID)
	return args.Bool(0), args.Error(1)
}

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockMenuGroupUoW struct{ mock.Mock }

func (m *MockMenuGroupUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuGroupUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuGroupUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuGroupUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}

type MockMenuGroupUoWFactory struct{ mock.Mock }

func (m *MockMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuGroupUoW)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}
func (m *MockMenuUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}
func (m *MockMenuUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}
func (m *MockOrderUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}
func (m *MockOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTableRegistryUoW struct{ mock.Mock }

func (m *MockTableRegistryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableRegistryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableRegistryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableRegistryUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

type MockTableRegistryUoWFactory struct{ mock.Mock }

func (m *MockTableRegistryUoWFactory) Create() commands.TableRegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.TableRegistryUoW)
}

type MockTableUoW struct{ mock.Mock }

func (m *MockTableUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTableUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}
func (m *MockTableUoW) OrderActivityVerifier() services.OrderActivityVerifier {
	args := m.Called()
	return args.Get(0).(services.OrderActivityVerifier)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockGroupUoW struct{ mock.Mock }

func (m *MockGroupUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}
func (m *MockGroupUoW) TableGroupRepository() ports.TableGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.TableGroupRepository)
}
func (m *MockGroupUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}
func (m *MockGroupUoW) OrderActivityVerifier() services.OrderActivityVerifier {
	args := m.Called()
	return args.Get(0).(services.OrderActivityVerifier)
}

type MockGroupUoWFactory struct{ mock.Mock }

func (m *MockGroupUoWFactory) Create() commands.GroupUoW {
	args := m.Called()
	return args.Get(0).(commands.GroupUoW)
}
