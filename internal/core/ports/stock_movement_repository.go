package ports

import (
	"context"

	"medorders/internal/core/domain/model/medicine"
)

// StockMovementRepository is the append-only inventory ledger.
type StockMovementRepository interface {
	Append(ctx context.Context, movements ...*medicine.StockMovement) error
}
