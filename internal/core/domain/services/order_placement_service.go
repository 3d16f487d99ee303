package services

import (
	"errors"
	"fmt"
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
)

// Line is one requested medicine of a new order.
type Line struct {
	MedicineID kernel.UUID
	Quantity   int
}

// Placement describes an order a sales representative wants to create.
type Placement struct {
	Customer      order.Customer
	Delivery      order.Delivery
	CustomerNotes string
	Lines         []Line
}

// OrderPlacementService turns a Placement into a Pending order, snapshotting
// catalog prices into the items. Stock is only checked here; it is taken when
// fulfilment starts.
type OrderPlacementService struct {
	policy  AccessPolicy
	pricing order.Pricing
	now     func() time.Time
}

func NewOrderPlacementService(policy AccessPolicy, pricing order.Pricing, now func() time.Time) (*OrderPlacementService, error) {
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &OrderPlacementService{policy: policy, pricing: pricing, now: now}, nil
}

// AuthorizePlacement returns ErrUnauthorized unless a may create orders.
func (s *OrderPlacementService) AuthorizePlacement(a actor.Actor) error {
	if !s.policy.CanCreateOrder(a) {
		return fmt.Errorf("%w: %s may not create orders", ErrUnauthorized, a.Role())
	}
	return nil
}

// ValidateLines checks the shape of the selection before any catalog lookup.
func ValidateLines(lines []Line) error {
	switch {
	case len(lines) == 0:
		return fmt.Errorf("%w: select at least one medicine", order.ErrInvalidSelection)
	case len(lines) > order.MaxItems:
		return fmt.Errorf("%w: at most %d medicines per order, got %d",
			order.ErrInvalidSelection, order.MaxItems, len(lines))
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.MedicineID.Validate(); err != nil {
			return fmt.Errorf("%w: %w", order.ErrInvalidSelection, err)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for medicine %s must be greater than 0",
				order.ErrInvalidSelection, line.MedicineID)
		}
		if _, dup := seen[line.MedicineID]; dup {
			return fmt.Errorf("%w: medicine %s is selected more than once",
				order.ErrInvalidSelection, line.MedicineID)
		}
		seen[line.MedicineID] = struct{}{}
	}
	return nil
}

// Place builds the order. catalog must contain every requested medicine;
// unknown or inactive medicines fail with order.ErrInvalidSelection and
// quantities above current stock with medicine.ErrInsufficientStock.
func (s *OrderPlacementService) Place(
	a actor.Actor,
	id kernel.UUID,
	number string,
	placement Placement,
	catalog Stock,
) (*order.Order, error) {
	if err := s.AuthorizePlacement(a); err != nil {
		return nil, err
	}
	if err := ValidateLines(placement.Lines); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(placement.Lines))
	for _, line := range placement.Lines {
		m, ok := catalog[line.MedicineID]
		if !ok {
			return nil, fmt.Errorf("%w: medicine %s does not exist", order.ErrInvalidSelection, line.MedicineID)
		}
		if !m.IsActive() {
			return nil, fmt.Errorf("%w: medicine %s is not available", order.ErrInvalidSelection, m.Name())
		}
		if err := m.CheckAvailability(line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewItem(kernel.NewUUID(), m.ID(), m.Name(), line.Quantity, m.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(
		id,
		number,
		a.ID(),
		placement.Customer,
		placement.Delivery,
		placement.CustomerNotes,
		items,
		s.pricing,
		s.now(),
	)
}
