package commands

import (
	"context"
	"errors"
	"log/slog"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler applies a status/payment change and
// appends the history entry in the same transaction.
//
// Checks run in this order, each failure leaving storage untouched:
//  1. services.ErrUnauthorized unless the actor may manage status
//  2. order.ErrInvalidStatus for unknown status or payment codes
//  3. errs.ObjectNotFoundError when the order does not exist
//  4. order.ErrIllegalTransition when the order is terminal
//  5. medicine.ErrInsufficientStock when fulfilment cannot start
//
// The order row stays locked until commit, so concurrent changes to the same
// order run one after the other and stock is taken at most once.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	transitions *services.StatusTransitionService
	invalidator StatsInvalidator
	logger      *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	transitions *services.StatusTransitionService,
	invalidator StatsInvalidator,
	logger *slog.Logger,
) (*ChangeOrderStatusCommandHandler, error) {
	if uowFactory == nil {
		return nil, errors.New("uow factory is required")
	}
	if transitions == nil {
		return nil, errors.New("status transition service is required")
	}
	return &ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		invalidator: invalidator,
		logger:      loggerOrDefault(logger),
	}, nil
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.transitions.AuthorizeStatusChange(cmd.Actor()); err != nil {
		return err
	}

	status, err := order.StatusFromCode(cmd.StatusCode())
	if err != nil {
		return err
	}
	paymentStatus, err := order.PaymentStatusFromCode(cmd.PaymentStatusCode())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var stock services.Stock
	if o.StockEffectOf(status) != order.StockUnchanged {
		if stock, err = loadStock(ctx, uow.MedicineRepository(), itemMedicineIDs(o)); err != nil {
			return err
		}
	}

	tr, err := h.transitions.Apply(cmd.Actor(), o, services.StatusChange{
		Status:        status,
		PaymentStatus: paymentStatus,
		Note:          cmd.Note(),
	}, stock)
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
