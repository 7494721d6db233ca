// Package http exposes the back-office API over REST. The acting user comes
// from the X-User-Id header; authentication itself lives at the gateway.
package http

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actingUserHeader = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       *commands.CreateOrderCommandHandler
	changeOrderStatusHandler *commands.ChangeOrderStatusCommandHandler
	updateOrderHandler       *commands.UpdateOrderCommandHandler
	deleteOrderHandler       *commands.DeleteOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	adminReportHandler         queries.AdminReportQueryHandler
	deliveryReportHandler      queries.DeliveryReportQueryHandler
	shopReportHandler          queries.ShopReportQueryHandler
	comprehensiveReportHandler queries.ComprehensiveReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler *commands.CreateOrderCommandHandler,
	changeOrderStatusHandler *commands.ChangeOrderStatusCommandHandler,
	updateOrderHandler *commands.UpdateOrderCommandHandler,
	deleteOrderHandler *commands.DeleteOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	adminReportHandler queries.AdminReportQueryHandler,
	deliveryReportHandler queries.DeliveryReportQueryHandler,
	shopReportHandler queries.ShopReportQueryHandler,
	comprehensiveReportHandler queries.ComprehensiveReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		adminReportHandler:         adminReportHandler,
		deliveryReportHandler:      deliveryReportHandler,
		shopReportHandler:          shopReportHandler,
		comprehensiveReportHandler: comprehensiveReportHandler,
	}
}

// RegisterRoutes attaches all back-office endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/active", s.GetActiveOrders)

	api.GET("/reports/admin", s.GetAdminReport)
	api.GET("/reports/deliveries/:id", s.GetDeliveryReport)
	api.GET("/reports/shops/:id", s.GetShopReport)
	api.GET("/reports/comprehensive", s.GetComprehensiveReport)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryFee, err := kernel.MoneyFromString(req.DeliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid delivery fee: "+err.Error())
	}
	total, err := kernel.MoneyFromString(req.Total)
	if err != nil {
		return badRequest(ctx, "Invalid total: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerPhone, req.CustomerAddress,
		deliveryFee, total,
		req.Notes,
		actingUserID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), actingUserID)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var deliveryFee, total *kernel.Money
	if req.DeliveryFee != nil {
		fee, feeErr := kernel.MoneyFromString(*req.DeliveryFee)
		if feeErr != nil {
			return badRequest(ctx, "Invalid delivery fee: "+feeErr.Error())
		}
		deliveryFee = &fee
	}
	if req.Total != nil {
		t, totalErr := kernel.MoneyFromString(*req.Total)
		if totalErr != nil {
			return badRequest(ctx, "Invalid total: "+totalErr.Error())
		}
		total = &t
	}

	var status *order.Status
	if req.Status != nil {
		st := order.Status(*req.Status)
		status = &st
	}

	var addedByID *kernel.UUID
	if req.AddedByID != nil {
		id, idErr := kernel.UUIDFromString(*req.AddedByID)
		if idErr != nil {
			return badRequest(ctx, "Invalid added_by_id")
		}
		addedByID = &id
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, actingUserID,
		req.CustomerName, req.CustomerPhone, req.CustomerAddress,
		deliveryFee, total,
		status, addedByID, req.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toActiveOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAdminReport handles GET /api/v1/reports/admin.
func (s *Server) GetAdminReport(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.adminReportHandler.Handle(ctx.Request().Context(), queries.NewAdminReportQuery(period))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAdminReportResponse(report))
}

// GetDeliveryReport handles GET /api/v1/reports/deliveries/:id.
func (s *Server) GetDeliveryReport(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewDeliveryReportQuery(driverID, period)
	if err != nil {
		return badRequest(ctx, "Invalid report request: "+err.Error())
	}

	report, err := s.deliveryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryReportResponse(report))
}

// GetShopReport handles GET /api/v1/reports/shops/:id.
func (s *Server) GetShopReport(ctx echo.Context) error {
	shopID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}

	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewShopReportQuery(shopID, period)
	if err != nil {
		return badRequest(ctx, "Invalid report request: "+err.Error())
	}

	report, err := s.shopReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShopReportResponse(report))
}

// GetComprehensiveReport handles GET /api/v1/reports/comprehensive.
func (s *Server) GetComprehensiveReport(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.comprehensiveReportHandler.Handle(
		ctx.Request().Context(),
		queries.NewComprehensiveReportQuery(period),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toComprehensiveReportResponse(report))
}

// actingUser extracts the acting user from the X-User-Id header.
func actingUser(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actingUserHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + actingUserHeader + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid " + actingUserHeader + " header")
	}

	return id, nil
}

// parsePeriod reads the optional start and end query parameters (YYYY-MM-DD).
func parsePeriod(ctx echo.Context) (queries.Period, error) {
	var start, end *time.Time

	if raw := ctx.QueryParam("start"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return queries.Period{}, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		start = &t
	}
	if raw := ctx.QueryParam("end"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return queries.Period{}, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		end = &t
	}

	period, err := queries.NewPeriod(start, end)
	if err != nil {
		return queries.Period{}, err
	}

	return period, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain error kinds to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
