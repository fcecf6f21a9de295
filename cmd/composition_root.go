package cmd

import (
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/outboxrepo"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	var f commands.TableRegistryUoWFactory = FuncTableRegistryUoWFactory(func() commands.TableRegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderTableCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeTableGuestsCommandHandler() commands.ChangeTableGuestsCommandHandler {
	var f commands.TableRegistryUoWFactory = FuncTableRegistryUoWFactory(func() commands.TableRegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTableGuestsCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeTableEmptyCommandHandler() commands.ChangeTableEmptyCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTableEmptyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGroupTablesCommandHandler() commands.GroupTablesCommandHandler {
	var f commands.GroupUoWFactory = FuncGroupUoWFactory(func() commands.GroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGroupTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateUngroupTablesCommandHandler() commands.UngroupTablesCommandHandler {
	var f commands.GroupUoWFactory = FuncGroupUoWFactory(func() commands.GroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUngroupTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllMenusQueryHandler() queries.GetAllMenusQueryHandler {
	return queries.NewGetAllMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrderTablesQueryHandler() queries.GetAllOrderTablesQueryHandler {
	return queries.NewGetAllOrderTablesQueryHandler(c.gormDB)
}

// CreateOutboxRepository returns an outbox repository over the main connection,
// outside any unit of work. The relay job reads committed events only.
func (c *CompositionRoot) CreateOutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(c.gormDB)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableRegistryUoWFactory func() commands.TableRegistryUoW

func (f FuncTableRegistryUoWFactory) Create() commands.TableRegistryUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncGroupUoWFactory func() commands.GroupUoW

func (f FuncGroupUoWFactory) Create() commands.GroupUoW {
	return f()
}
