package commands

import (
	"context"
	"errors"
	"log/slog"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
)

// CreateOrderCommandHandler places a new Pending order with price-snapshotted
// items.
//
//	handler, _ := NewCreateOrderCommandHandler(uowFactory, placement, stats, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	placement   *services.OrderPlacementService
	invalidator StatsInvalidator
	logger      *slog.Logger
	newNumber   func() string
}

// NewCreateOrderCommandHandler requires a unit of work factory and the
// placement service; invalidator and logger may be nil.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	placement *services.OrderPlacementService,
	invalidator StatsInvalidator,
	logger *slog.Logger,
) (*CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errors.New("uow factory is required")
	}
	if placement == nil {
		return nil, errors.New("placement service is required")
	}
	return &CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		placement:   placement,
		invalidator: invalidator,
		logger:      loggerOrDefault(logger),
		newNumber:   order.NewNumber,
	}, nil
}

// Handle checks the actor may create orders and the selection is well formed
// before touching storage, then reads the selected medicines and stores the
// order in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.placement.AuthorizePlacement(cmd.Actor()); err != nil {
		return err
	}
	if err := services.ValidateLines(cmd.Lines()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		ids = append(ids, line.MedicineID)
	}

	catalog, err := loadStock(ctx, uow.MedicineRepository(), ids)
	if err != nil {
		return err
	}

	o, err := h.placement.Place(cmd.Actor(), cmd.OrderID(), h.newNumber(), services.Placement{
		Customer:      cmd.Customer(),
		Delivery:      cmd.Delivery(),
		CustomerNotes: cmd.CustomerNotes(),
		Lines:         cmd.Lines(),
	}, catalog)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidate(ctx, h.invalidator, h.logger)
	return nil
}
