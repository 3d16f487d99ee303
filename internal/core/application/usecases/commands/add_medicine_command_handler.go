package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/services"
)

// AddMedicineCommandHandler adds a medicine to the catalog. The dashboard
// figures count low-stock medicines, so a successful add invalidates them.
type AddMedicineCommandHandler struct {
	uowFactory  MedicineUoWFactory
	policy      services.AccessPolicy
	invalidator StatsInvalidator
	logger      *slog.Logger
}

func NewAddMedicineCommandHandler(
	uowFactory MedicineUoWFactory,
	policy services.AccessPolicy,
	invalidator StatsInvalidator,
	logger *slog.Logger,
) (*AddMedicineCommandHandler, error) {
	if uowFactory == nil {
		return nil, errors.New("uow factory is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &AddMedicineCommandHandler{
		uowFactory:  uowFactory,
		policy:      policy,
		invalidator: invalidator,
		logger:      loggerOrDefault(logger),
	}, nil
}

func (h *AddMedicineCommandHandler) Handle(ctx context.Context, cmd AddMedicineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.policy.CanManageCatalog(cmd.Actor()) {
		return fmt.Errorf("%w: %s may not change the catalog", services.ErrUnauthorized, cmd.Actor().Role())
	}

	m, err := medicine.NewMedicine(cmd.MedicineID(), cmd.Name(), cmd.UnitPrice(), cmd.Stock())
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

	if err = uow.MedicineRepository().Add(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidate(ctx, h.invalidator, h.logger)
	return nil
}
