// Package http is the inbound HTTP shell: thin echo handlers that bind JSON,
// build commands and queries, and map domain errors to status codes. No
// business decisions are made here.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	runSchedulerHandler    commands.RunSchedulerCommandHandler

	listOrdersHandler               queries.ListOrdersQueryHandler
	getOrderEventsHandler           queries.GetOrderEventsQueryHandler
	listPendingNotificationsHandler queries.ListPendingNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	runSchedulerHandler commands.RunSchedulerCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderEventsHandler queries.GetOrderEventsQueryHandler,
	listPendingNotificationsHandler queries.ListPendingNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		transitionOrderHandler:          transitionOrderHandler,
		cancelOrderHandler:              cancelOrderHandler,
		runSchedulerHandler:             runSchedulerHandler,
		listOrdersHandler:               listOrdersHandler,
		getOrderEventsHandler:           getOrderEventsHandler,
		listPendingNotificationsHandler: listPendingNotificationsHandler,
	}
}

// Register wires all routes onto the echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id/events", s.GetOrderEvents)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/notifications/pending", s.ListPendingNotifications)
	api.POST("/scheduler/run", s.RunScheduler)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	country, err := kernel.CountryFromString(body.Country)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderType := order.TypeNormal
	if body.OrderType != "" {
		if orderType, err = order.TypeFromString(body.OrderType); err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
		}
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.ItemInput{
			Name:         item.Name,
			SKU:          item.SKU,
			Quantity:     item.Quantity,
			UnitPriceNet: item.UnitPriceNet,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		country,
		orderType,
		body.CustomerName,
		body.CustomerEmail,
		items,
		body.ShippingNet,
		body.SurchargesNet,
		body.IsReverseCharge,
		"shop",
	)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{
		ID:               result.OrderID.String(),
		OrderNo:          result.OrderNo,
		ConfirmationSent: result.ConfirmationSent,
	})
}

// ListOrders handles GET /api/v1/orders - retrieves the order listing.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid status filter")
		}
		status = parsed
	}

	var country kernel.Country
	if raw := ctx.QueryParam("country"); raw != "" {
		parsed, err := kernel.CountryFromString(raw)
		if err != nil {
			return jsonError(ctx, http.StatusBadRequest, "Invalid country filter")
		}
		country = parsed
	}

	limit := intQueryParam(ctx, "limit")
	offset := intQueryParam(ctx, "offset")

	query, err := queries.NewListOrdersQuery(status, country, limit, offset)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid listing request: "+err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:            o.ID.String(),
			OrderNo:       o.OrderNo,
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			Country:       o.Country,
			OrderType:     o.OrderType,
			TotalGross:    o.TotalGross,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderEvents handles GET /api/v1/orders/:id/events - the audit trail.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderEventsQuery(orderID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	events, err := s.getOrderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve events")
	}

	response := make([]OrderEvent, len(events))
	for i, event := range events {
		response[i] = OrderEvent{
			ID:         event.ID.String(),
			Kind:       event.Kind,
			FromStatus: event.FromStatus,
			ToStatus:   event.ToStatus,
			Actor:      event.Actor,
			Detail:     event.Detail,
			At:         event.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - advances the
// order along one validated edge of the state machine.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid target status")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, body.Actor, body.NextStatusAt)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to transition order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body CancelRequest
	if err = ctx.Bind(&body); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason, body.Actor)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid cancel request: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListPendingNotifications handles GET /api/v1/notifications/pending - shows
// unresolved outbox entries for operators.
func (s *Server) ListPendingNotifications(ctx echo.Context) error {
	query, err := queries.NewListPendingNotificationsQuery(intQueryParam(ctx, "limit"))
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid listing request: "+err.Error())
	}

	entries, err := s.listPendingNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve pending notifications")
	}

	response := make([]PendingNotification, len(entries))
	for i, entry := range entries {
		response[i] = PendingNotification{
			ID:         entry.ID.String(),
			OrderID:    entry.OrderID.String(),
			TemplateID: entry.TemplateID,
			CreatedAt:  entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RunScheduler handles POST /api/v1/scheduler/run - triggers one scheduler
// run manually. Safe to call while the cron job is active.
func (s *Server) RunScheduler(ctx echo.Context) error {
	cmd, err := commands.NewRunSchedulerCommand(time.Now())
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to build scheduler command")
	}

	summary, err := s.runSchedulerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Scheduler run failed")
	}

	return ctx.JSON(http.StatusOK, SchedulerRunResult{
		Transitions: PhaseResult{
			Processed: summary.Transitions.Processed,
			Errors:    summary.Transitions.Errors,
		},
		WeekendHellos: PhaseResult{
			Processed: summary.WeekendHellos.Processed,
			Errors:    summary.WeekendHellos.Errors,
		},
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func intQueryParam(ctx echo.Context, name string) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0
	}

	var value int
	if err := echo.QueryParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0
	}
	return value
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// domainError maps domain error classes to HTTP status codes.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConcurrentUpdate):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, fallback)
	}
}
