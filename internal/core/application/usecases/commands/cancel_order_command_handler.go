package commands

import (
	"context"
	"errors"
	"log/slog"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/errs"
)

// CancelOrderCommandHandler moves an order to Cancelled, restoring stock
// taken by fulfilment.
type CancelOrderCommandHandler struct {
	uowFactory  UoWFactory
	transitions *services.StatusTransitionService
	policy      services.AccessPolicy
	invalidator StatsInvalidator
	logger      *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	transitions *services.StatusTransitionService,
	policy services.AccessPolicy,
	invalidator StatsInvalidator,
	logger *slog.Logger,
) (*CancelOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errors.New("uow factory is required")
	}
	if transitions == nil {
		return nil, errors.New("status transition service is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &CancelOrderCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		policy:      policy,
		invalidator: invalidator,
		logger:      loggerOrDefault(logger),
	}, nil
}

// Handle reports orders the actor cannot see as not found, so a sales rep
// cannot learn which ids belong to other reps.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !h.policy.CanViewOrder(cmd.Actor(), o) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	var stock services.Stock
	if !o.Status().IsTerminal() && o.StockEffectOf(order.Cancelled) != order.StockUnchanged {
		if stock, err = loadStock(ctx, uow.MedicineRepository(), itemMedicineIDs(o)); err != nil {
			return err
		}
	}

	tr, err := h.transitions.Cancel(cmd.Actor(), o, cmd.Note(), stock)
	if err != nil {
		return err
	}

	if err = persistTransition(ctx, uow, o, tr); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidate(ctx, h.invalidator, h.logger)
	return nil
}
