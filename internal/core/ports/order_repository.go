// Package ports defines the interfaces the order core uses to reach the
// outside world: repositories, the unit of work, authentication and caching.
// Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order: status,
	// payment status, milestones and the modification timestamp. Items are
	// never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ObjectNotFoundError
	// when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the surrounding
	// transaction ends. Status changes read through it so that concurrent
	// changes of one order apply one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
