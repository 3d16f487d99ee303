package ports

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
)

// HistoryRepository is the append-only status history log. There is
// intentionally no way to change or remove an entry.
type HistoryRepository interface {
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// ListByOrder returns the entries of one order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
