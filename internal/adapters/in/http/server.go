// Package http provides the inbound REST adapter. It translates HTTP
// requests into commands and queries and maps domain errors onto status
// codes.
package http

import (
	"errors"
	"net/http"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/application/usecases/queries"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/order"
	"vintage/internal/core/domain/services"
	"vintage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler    commands.RegisterUserCommandHandler
	createCarrierHandler   commands.CreateCarrierCommandHandler
	listItemHandler        commands.ListItemCommandHandler
	relistItemHandler      commands.RelistItemCommandHandler
	delistItemHandler      commands.DelistItemCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler
	advanceClockHandler    commands.AdvanceClockCommandHandler
	returnOrderHandler     commands.ReturnOrderCommandHandler

	// Query handlers
	getCarriersHandler       queries.GetCarriersQueryHandler
	getListedItemsHandler    queries.GetListedItemsQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getUserBillsHandler      queries.GetUserBillsQueryHandler
	getPlatformStatusHandler queries.GetPlatformStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	listItemHandler commands.ListItemCommandHandler,
	relistItemHandler commands.RelistItemCommandHandler,
	delistItemHandler commands.DelistItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	advanceClockHandler commands.AdvanceClockCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	getCarriersHandler queries.GetCarriersQueryHandler,
	getListedItemsHandler queries.GetListedItemsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getUserBillsHandler queries.GetUserBillsQueryHandler,
	getPlatformStatusHandler queries.GetPlatformStatusQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		createCarrierHandler:     createCarrierHandler,
		listItemHandler:          listItemHandler,
		relistItemHandler:        relistItemHandler,
		delistItemHandler:        delistItemHandler,
		placeOrderHandler:        placeOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		removeOrderItemHandler:   removeOrderItemHandler,
		advanceClockHandler:      advanceClockHandler,
		returnOrderHandler:       returnOrderHandler,
		getCarriersHandler:       getCarriersHandler,
		getListedItemsHandler:    getListedItemsHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getUserBillsHandler:      getUserBillsHandler,
		getPlatformStatusHandler: getPlatformStatusHandler,
	}
}

// RegisterRoutes wires the API routes into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.GET("/users/:id/bills", s.GetUserBills)

	api.POST("/carriers", s.CreateCarrier)
	api.GET("/carriers", s.GetCarriers)

	api.POST("/items", s.ListItem)
	api.GET("/items", s.GetListedItems)
	api.POST("/items/:id/relist", s.RelistItem)
	api.POST("/items/:id/delist", s.DelistItem)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)
	api.POST("/orders/:id/return", s.ReturnOrder)

	api.GET("/platform", s.GetPlatformStatus)
	api.POST("/clock/advance", s.AdvanceClock)
}

// RegisterUser handles POST /api/v1/users - registers a new user.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request NewUser
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(request.Email, request.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register user")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.UserID().Bytes()})
}

// CreateCarrier handles POST /api/v1/carriers - registers a new carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var request NewCarrier
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCarrierCommand(request.Name, request.TaxSmall, request.TaxMedium, request.TaxBig)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid carrier data: "+err.Error())
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create carrier")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.CarrierID().Bytes()})
}

// ListItem handles POST /api/v1/items - lists an item for sale.
func (s *Server) ListItem(ctx echo.Context) error {
	var request NewItem
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	sellerID, err := kernel.UUIDFromString(request.SellerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid seller id")
	}

	cmd, err := commands.NewListItemCommand(
		sellerID,
		request.CarrierName,
		request.Description,
		request.Brand,
		request.BasePrice,
		request.Price,
		request.ConditionScore,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.listItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to list item")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.ItemID().Bytes()})
}

// RelistItem handles POST /api/v1/items/:id/relist - puts a held item back
// on sale.
func (s *Server) RelistItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewRelistItemCommand(itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.relistItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to relist item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DelistItem handles POST /api/v1/items/:id/delist - takes a listed item
// off the market.
func (s *Server) DelistItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewDelistItemCommand(itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.delistItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to delist item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - opens a pending order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request NewOrder
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(request.BuyerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid buyer id")
	}

	itemIDs := make([]kernel.UUID, 0, len(request.ItemIDs))
	for _, raw := range request.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid item id: "+raw)
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewPlaceOrderCommand(buyerID, itemIDs)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.OrderID().Bytes()})
}

// AddOrderItem handles POST /api/v1/orders/:id/items - adds an item to a
// pending order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request OrderItem
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromString(request.ItemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to add item to order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId - removes
// an item from a pending order.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to remove item from order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceClock handles POST /api/v1/clock/advance - moves the simulation
// clock forward, settling orders day by day.
func (s *Server) AdvanceClock(ctx echo.Context) error {
	var request ClockTarget
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := kernel.DateFromString(request.Target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid target date")
	}

	cmd, err := commands.NewAdvanceClockCommand(target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid clock data: "+err.Error())
	}

	if handleErr := s.advanceClockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to advance clock")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return - returns a dispatched
// order inside the return window.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewReturnOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid return data: "+err.Error())
	}

	if handleErr := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to return order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCarriers handles GET /api/v1/carriers - retrieves all carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetCarriersQuery()

	carriers, err := s.getCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve carriers")
	}

	response := make([]Carrier, len(carriers))
	for i, shipper := range carriers {
		response[i] = Carrier{
			ID:           shipper.ID.Bytes(),
			Name:         shipper.Name,
			TaxSmall:     shipper.TaxSmall,
			TaxMedium:    shipper.TaxMedium,
			TaxBig:       shipper.TaxBig,
			TotalEarning: shipper.TotalEarning,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetListedItems handles GET /api/v1/items - retrieves items for sale.
func (s *Server) GetListedItems(ctx echo.Context) error {
	query := queries.NewGetListedItemsQuery()

	items, err := s.getListedItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve items")
	}

	response := make([]Item, len(items))
	for i, listed := range items {
		response[i] = Item{
			ID:          listed.ID.Bytes(),
			Description: listed.Description,
			Brand:       listed.Brand,
			Price:       listed.Price,
			CarrierName: listed.CarrierName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves orders that
// have not dispatched yet.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, active := range orders {
		response[i] = Order{
			ID:        active.ID.Bytes(),
			BuyerID:   active.BuyerID.Bytes(),
			Date:      active.Date.String(),
			Status:    active.Status,
			ItemCount: active.ItemCount,
			TotalCost: active.TotalCost,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUserBills handles GET /api/v1/users/:id/bills - retrieves a user's bills.
func (s *Server) GetUserBills(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id")
	}

	query, err := queries.NewGetUserBillsQuery(userID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	bills, err := s.getUserBillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve bills")
	}

	response := make([]Bill, len(bills))
	for i, settled := range bills {
		response[i] = Bill{
			ID:        settled.ID.Bytes(),
			Kind:      settled.Kind,
			OrderID:   settled.OrderID.Bytes(),
			TotalCost: settled.TotalCost,
			PortsTax:  settled.PortsTax,
			Amount:    settled.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPlatformStatus handles GET /api/v1/platform - retrieves the clock and
// the accumulated profit.
func (s *Server) GetPlatformStatus(ctx echo.Context) error {
	query := queries.NewGetPlatformStatusQuery()

	status, err := s.getPlatformStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Platform is not initialized")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve platform status")
	}

	return ctx.JSON(http.StatusOK, PlatformStatus{
		CurrentDate:   status.CurrentDate.String(),
		VintageProfit: status.VintageProfit,
	})
}

// domainError maps a command handler error onto an HTTP status: missing
// aggregates are 404, rejected state transitions and duplicates are 409,
// validation failures are 400.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrCarrierAlreadyExists),
		errors.Is(err, commands.ErrItemIsNotForSale),
		errors.Is(err, commands.ErrBuyerOwnsItem),
		errors.Is(err, item.ErrItemIsNotListed),
		errors.Is(err, item.ErrItemIsNotHeld),
		errors.Is(err, item.ErrItemIsNotReserved),
		errors.Is(err, order.ErrOrderIsNotPending),
		errors.Is(err, services.ErrOrderIsNotReturnable):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrTargetPrecedesClock),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
