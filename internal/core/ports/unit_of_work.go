package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork wraps one database transaction. Repositories obtained from it
// take part in the transaction once Begin has been called.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil { ... }
//	defer uow.Rollback(ctx)
//	...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	// Rollback is a no-op after Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	HistoryRepository() HistoryRepository

	MedicineRepository() MedicineRepository

	StockMovementRepository() StockMovementRepository
}
