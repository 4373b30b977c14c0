package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	orderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	orderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	ordersLister interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
	}

	courierRulesLister interface {
		Handle(ctx context.Context, query queries.GetCourierRulesQuery) ([]queries.GetCourierRulesQueryResponse, error)
	}

	allocationRecorder interface {
		RecordAllocation(courier string)
	}
)

// Server handles the order intake HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       orderCreator
	changeOrderStatusHandler orderStatusChanger

	// Query handlers
	getAllOrdersHandler    ordersLister
	getCourierRulesHandler courierRulesLister

	allocations allocationRecorder
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler orderCreator,
	changeOrderStatusHandler orderStatusChanger,
	getAllOrdersHandler ordersLister,
	getCourierRulesHandler courierRulesLister,
	allocations allocationRecorder,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getCourierRulesHandler:   getCourierRulesHandler,
		allocations:              allocations,
		logger:                   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /orders - allocates a courier and stores the order.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.Destination, req.Weight)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	result, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, services.ErrNoSuitableCourier) {
			s.allocations.RecordAllocation("")
		}
		return writeError(c, s.logger, err)
	}

	s.allocations.RecordAllocation(result.Courier)

	return c.JSON(http.StatusOK, CreateOrderResponse{
		Message: orderCreatedMessage,
		Courier: result.Courier,
		ID:      result.OrderID,
	})
}

// ListOrders handles GET /orders - returns all orders in creation order.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			Destination:  o.Destination,
			Weight:       o.Weight,
			Courier:      o.Courier,
			Status:       o.Status,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListCourierRules handles GET /courier-rules - returns the allocation rules in order.
func (s *Server) ListCourierRules(c echo.Context) error {
	rules, err := s.getCourierRulesHandler.Handle(c.Request().Context(), queries.NewGetCourierRulesQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	response := make([]CourierRule, len(rules))
	for i, r := range rules {
		response[i] = CourierRule{
			Courier:   r.Courier,
			MaxWeight: r.MaxWeight,
			Region:    r.Region,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /orders/{id}/status?status=<value>.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return writeError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var status string
	err = runtime.BindQueryParameter("form", true, true, "status", c.QueryParams(), &status)
	if err != nil {
		return writeError(c, s.logger, errs.NewValueIsRequiredErrorWithCause("status", err))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: orderStatusUpdatedMessage})
}
