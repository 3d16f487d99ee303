package commands

import (
	"context"
	"log/slog"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"
)

func loadStock(ctx context.Context, repo ports.MedicineRepository, ids []kernel.UUID) (services.Stock, error) {
	medicines, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	stock := make(services.Stock, len(medicines))
	for _, m := range medicines {
		stock[m.ID()] = m
	}
	return stock, nil
}

func itemMedicineIDs(o *order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.Items()))
	for _, item := range o.Items() {
		ids = append(ids, item.MedicineID())
	}
	return ids
}

func persistTransition(ctx context.Context, uow UoW, o *order.Order, tr *services.Transition) error {
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err := uow.HistoryRepository().Append(ctx, tr.Entry); err != nil {
		return err
	}
	for _, m := range tr.Medicines {
		if err := uow.MedicineRepository().Update(ctx, m); err != nil {
			return err
		}
	}
	if len(tr.Movements) == 0 {
		return nil
	}
	return uow.StockMovementRepository().Append(ctx, tr.Movements...)
}

// invalidate runs after commit, so a failure is only logged: the cached
// figures still expire by TTL.
func invalidate(ctx context.Context, invalidator StatsInvalidator, logger *slog.Logger) {
	if invalidator == nil {
		return
	}
	if err := invalidator.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate dashboard stats", slog.Any("error", err))
	}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
