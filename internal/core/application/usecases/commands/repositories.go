// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a validated Command value, a
// Handler that authorizes, opens a unit of work, runs the domain service and
// persists the result before committing.
package commands

import (
	"context"

	"medorders/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	StockMovementRepoFactory interface {
		StockMovementRepository() ports.StockMovementRepository
	}

	// OrderUoW is used to place orders: it reads the catalog and stores the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MedicineRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MedicineUoW manages catalog-only operations.
	MedicineUoW interface {
		TxManager
		MedicineRepoFactory
	}

	MedicineUoWFactory interface {
		Create() MedicineUoW
	}

	// UoW spans orders, their history, the catalog and the stock ledger.
	// Status changes use it so the order update, the history append and the
	// stock movements commit together or not at all.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   ...
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		MedicineRepoFactory
		StockMovementRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// StatsInvalidator drops cached dashboard figures after a write.
	StatsInvalidator interface {
		Invalidate(ctx context.Context) error
	}
)
