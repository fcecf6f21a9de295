// Package http exposes the application's use cases over a REST API.
// Handlers translate JSON requests into commands and queries and map the
// error taxonomy of the core onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the restaurant API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler     commands.CreateProductCommandHandler
	createMenuGroupHandler   commands.CreateMenuGroupCommandHandler
	createMenuHandler        commands.CreateMenuCommandHandler
	createOrderTableHandler  commands.CreateOrderTableCommandHandler
	changeTableEmptyHandler  commands.ChangeTableEmptyCommandHandler
	changeTableGuestsHandler commands.ChangeTableGuestsCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	groupTablesHandler       commands.GroupTablesCommandHandler
	ungroupTablesHandler     commands.UngroupTablesCommandHandler

	// Query handlers
	getAllMenusHandler       queries.GetAllMenusQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getAllOrderTablesHandler queries.GetAllOrderTablesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	createOrderTableHandler commands.CreateOrderTableCommandHandler,
	changeTableEmptyHandler commands.ChangeTableEmptyCommandHandler,
	changeTableGuestsHandler commands.ChangeTableGuestsCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	groupTablesHandler commands.GroupTablesCommandHandler,
	ungroupTablesHandler commands.UngroupTablesCommandHandler,
	getAllMenusHandler queries.GetAllMenusQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllOrderTablesHandler queries.GetAllOrderTablesQueryHandler,
) *Server {
	return &Server{
		createProductHandler:     createProductHandler,
		createMenuGroupHandler:   createMenuGroupHandler,
		createMenuHandler:        createMenuHandler,
		createOrderTableHandler:  createOrderTableHandler,
		changeTableEmptyHandler:  changeTableEmptyHandler,
		changeTableGuestsHandler: changeTableGuestsHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		groupTablesHandler:       groupTablesHandler,
		ungroupTablesHandler:     ungroupTablesHandler,
		getAllMenusHandler:       getAllMenusHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAllOrderTablesHandler: getAllOrderTablesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.POST("/menu-groups", s.CreateMenuGroup)
	api.POST("/menus", s.CreateMenu)
	api.GET("/menus", s.GetMenus)
	api.POST("/tables", s.CreateOrderTable)
	api.GET("/tables", s.GetOrderTables)
	api.PUT("/tables/:id/empty", s.ChangeTableEmpty)
	api.PUT("/tables/:id/guests", s.ChangeTableGuests)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/table-groups", s.GroupTables)
	api.DELETE("/table-groups/:id", s.UngroupTables)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProduct
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.PriceMinorUnits)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: productID.String()})
}

// CreateMenuGroup handles POST /api/v1/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var req NewMenuGroup
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuGroupID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuGroupCommand(menuGroupID, req.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: menuGroupID.String()})
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var req NewMenu
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuGroupID, err := kernel.UUIDFromString(req.MenuGroupID)
	if err != nil {
		return badRequest(ctx, "Invalid menu group identifier")
	}

	lines := make([]commands.MenuProductLine, 0, len(req.MenuProducts))
	for _, mp := range req.MenuProducts {
		productID, convErr := kernel.UUIDFromString(mp.ProductID)
		if convErr != nil {
			return badRequest(ctx, "Invalid product identifier")
		}
		lines = append(lines, commands.MenuProductLine{
			ProductID: productID,
			Quantity:  mp.Quantity,
		})
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, req.Name, req.PriceMinorUnits, menuGroupID, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: menuID.String()})
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	query := queries.NewGetAllMenusQuery()

	menus, err := s.getAllMenusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve menus")
	}

	response := make([]Menu, len(menus))
	for i, m := range menus {
		products := make([]MenuProduct, len(m.Products))
		for j, mp := range m.Products {
			products[j] = MenuProduct{
				ProductID: mp.ProductID.String(),
				Quantity:  mp.Quantity,
			}
		}
		response[i] = Menu{
			ID:              m.ID.String(),
			Name:            m.Name,
			PriceMinorUnits: m.PriceMinorUnits,
			MenuGroupID:     m.MenuGroupID.String(),
			MenuProducts:    products,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderTable handles POST /api/v1/tables.
func (s *Server) CreateOrderTable(ctx echo.Context) error {
	orderTableID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderTableCommand(orderTableID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createOrderTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderTableID.String()})
}

// GetOrderTables handles GET /api/v1/tables.
func (s *Server) GetOrderTables(ctx echo.Context) error {
	query := queries.NewGetAllOrderTablesQuery()

	tables, err := s.getAllOrderTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve tables")
	}

	response := make([]OrderTable, len(tables))
	for i, t := range tables {
		var groupID *string
		if t.TableGroupID != nil {
			gid := t.TableGroupID.String()
			groupID = &gid
		}
		response[i] = OrderTable{
			ID:             t.ID.String(),
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
			TableGroupID:   groupID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeTableEmpty handles PUT /api/v1/tables/:id/empty.
func (s *Server) ChangeTableEmpty(ctx echo.Context) error {
	orderTableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table identifier")
	}

	var req ChangeEmpty
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeTableEmptyCommand(orderTableID, req.Empty)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.changeTableEmptyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeTableGuests handles PUT /api/v1/tables/:id/guests.
func (s *Server) ChangeTableGuests(ctx echo.Context) error {
	orderTableID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table identifier")
	}

	var req ChangeGuests
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeTableGuestsCommand(orderTableID, req.NumberOfGuests)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.changeTableGuestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderTableID, err := kernel.UUIDFromString(req.OrderTableID)
	if err != nil {
		return badRequest(ctx, "Invalid table identifier")
	}

	lines := make([]commands.OrderLine, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		menuID, convErr := kernel.UUIDFromString(li.MenuID)
		if convErr != nil {
			return badRequest(ctx, "Invalid menu identifier")
		}
		lines = append(lines, commands.OrderLine{
			MenuID:   menuID,
			Quantity: li.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, orderTableID, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		lineItems := make([]OrderLineItem, len(o.LineItems))
		for j, li := range o.LineItems {
			lineItems[j] = OrderLineItem{
				MenuID:   li.MenuID.String(),
				Quantity: li.Quantity,
			}
		}
		response[i] = Order{
			ID:           o.ID.String(),
			OrderTableID: o.OrderTableID.String(),
			Status:       o.Status,
			OrderedAt:    o.OrderedAt,
			LineItems:    lineItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req ChangeStatus
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GroupTables handles POST /api/v1/table-groups.
func (s *Server) GroupTables(ctx echo.Context) error {
	var req NewTableGroup
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableIDs := make([]kernel.UUID, 0, len(req.OrderTableIDs))
	for _, raw := range req.OrderTableIDs {
		tableID, convErr := kernel.UUIDFromString(raw)
		if convErr != nil {
			return badRequest(ctx, "Invalid table identifier")
		}
		tableIDs = append(tableIDs, tableID)
	}

	tableGroupID := kernel.NewUUID()
	cmd, err := commands.NewGroupTablesCommand(tableGroupID, tableIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.groupTablesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: tableGroupID.String()})
}

// UngroupTables handles DELETE /api/v1/table-groups/:id.
func (s *Server) UngroupTables(ctx echo.Context) error {
	tableGroupID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid table group identifier")
	}

	cmd, err := commands.NewUngroupTablesCommand(tableGroupID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.ungroupTablesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps core errors onto HTTP status codes.
// Not-found resolves to 404, business state conflicts to 409 and
// validation failures to 422; everything else is a 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStateConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
