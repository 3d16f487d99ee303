package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements servers.ServerInterface on top of the order use cases.
type Server struct {
	handlers Handlers
	policy   services.AccessPolicy
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer checks that every handler is present.
func NewServer(handlers Handlers, policy services.AccessPolicy, logger *slog.Logger) (*Server, error) {
	if handlers.CreateOrder == nil || handlers.ChangeOrderStatus == nil || handlers.CancelOrder == nil ||
		handlers.AddMedicine == nil || handlers.RegisterActor == nil || handlers.ListOrders == nil ||
		handlers.OrderDetails == nil || handlers.DashboardStats == nil || handlers.ListMedicines == nil {
		return nil, errors.New("all use case handlers are required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{handlers: handlers, policy: policy, logger: logger}, nil
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	filter := queries.OrderFilter{
		Status:        deref(params.Status),
		PaymentStatus: deref(params.PaymentStatus),
		MedicineID:    deref(params.MedicineId),
		Search:        deref(params.Search),
	}
	page := 1
	if params.Page != nil {
		page = *params.Page
	}

	query, err := queries.NewListOrdersQuery(requester, filter, page)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if !s.policy.CanCreateOrder(requester) {
		return s.respondError(ctx, fmt.Errorf("%w: %s may not create orders", services.ErrUnauthorized, requester.Role()))
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := newCreateOrderCommand(requester, body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: cmd.OrderID().Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	query, err := queries.NewGetOrderDetailsQuery(requester, id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	details, err := s.handlers.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, requester, body.Status, body.PaymentStatus, deref(body.Note))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. The body is optional.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CancelOrderJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(id, requester, deref(body.Note))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardStatsQuery(requester)
	if err != nil {
		return s.respondError(ctx, err)
	}

	stats, err := s.handlers.DashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboardStats(stats))
}

// ListMedicines handles GET /api/v1/medicines.
func (s *Server) ListMedicines(ctx echo.Context, params servers.ListMedicinesParams) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	includeInactive := params.IncludeInactive != nil && *params.IncludeInactive
	query, err := queries.NewListMedicinesQuery(requester, includeInactive)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.handlers.ListMedicines.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Medicine, len(views))
	for i, view := range views {
		response[i] = toMedicine(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddMedicine handles POST /api/v1/medicines.
func (s *Server) AddMedicine(ctx echo.Context) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.AddMedicineJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	price, err := kernel.MoneyFromString(body.UnitPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewAddMedicineCommand(kernel.NewUUID(), requester, body.Name, price, body.CurrentStock)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.AddMedicine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Medicine{
		Id:           cmd.MedicineID().Bytes(),
		Name:         cmd.Name(),
		UnitPrice:    cmd.UnitPrice().String(),
		CurrentStock: cmd.Stock(),
		IsActive:     true,
	})
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	requester, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.RegisterUserJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	role, err := actor.RoleFromCode(body.Role)
	if err != nil {
		return s.respondError(ctx, err)
	}
	newActor, err := actor.NewActor(kernel.NewUUID(), body.Username, role)
	if err != nil {
		return s.respondError(ctx, err)
	}
	cmd, err := commands.NewRegisterActorCommand(requester, newActor, body.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.RegisterActor.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.User{
		Id:       newActor.ID().Bytes(),
		Username: newActor.Username(),
		Role:     newActor.Role().Code(),
	})
}

func newCreateOrderCommand(requester actor.Actor, body servers.NewOrder) (commands.CreateOrderCommand, error) {
	customer, err := order.NewCustomer(body.CustomerName, deref(body.CustomerPhone), deref(body.CustomerAddress))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	method, err := order.DeliveryMethodFromCode(body.DeliveryMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	delivery, err := order.NewDelivery(method, deref(body.DeliveryAddress))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]services.Line, len(body.Items))
	for i, item := range body.Items {
		medicineID, parseErr := kernel.UUIDFromString(item.MedicineId)
		if parseErr != nil {
			return commands.CreateOrderCommand{}, fmt.Errorf("%w: item %d has an invalid medicine id %q",
				order.ErrInvalidSelection, i+1, item.MedicineId)
		}
		lines[i] = services.Line{MedicineID: medicineID, Quantity: item.Quantity}
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), requester, customer, delivery, deref(body.CustomerNotes), lines)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
