package services

import (
	"errors"
	"fmt"
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"
)

// StatusChange is the requested new state of an order.
type StatusChange struct {
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Note          string
}

// Stock is the set of catalog entries referenced by an order's items, keyed
// by medicine ID. Entries missing from the map are treated as out of stock.
type Stock map[kernel.UUID]*medicine.Medicine

// Transition is the outcome of a successful status change: the history entry
// to append, the medicines whose stock moved and one movement per medicine.
type Transition struct {
	Entry     *order.HistoryEntry
	Medicines []*medicine.Medicine
	Movements []*medicine.StockMovement
}

// StatusTransitionService applies status changes to orders.
//
// It checks authorization through the AccessPolicy, validates the requested
// values against the order lifecycle, moves stock when fulfilment starts or
// is abandoned, and returns exactly one HistoryEntry per successful call.
// Nothing is mutated when an error is returned.
type StatusTransitionService struct {
	policy AccessPolicy
	now    func() time.Time
}

// NewStatusTransitionService builds the service. now is used to timestamp
// changes; nil means time.Now in UTC.
func NewStatusTransitionService(policy AccessPolicy, now func() time.Time) (*StatusTransitionService, error) {
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &StatusTransitionService{policy: policy, now: now}, nil
}

// AuthorizeStatusChange returns ErrUnauthorized unless a may manage order status.
func (s *StatusTransitionService) AuthorizeStatusChange(a actor.Actor) error {
	if !s.policy.CanManageStatus(a) {
		return fmt.Errorf("%w: %s may not change order status", ErrUnauthorized, a.Role())
	}
	return nil
}

// Apply moves o to the requested status and payment status on behalf of a.
//
// Errors:
//   - ErrUnauthorized when the policy refuses a
//   - order.ErrInvalidStatus for values outside their enumerations
//   - order.ErrIllegalTransition when o is terminal and the status differs
//   - medicine.ErrInsufficientStock when starting fulfilment without stock
func (s *StatusTransitionService) Apply(
	a actor.Actor,
	o *order.Order,
	change StatusChange,
	stock Stock,
) (*Transition, error) {
	if err := s.AuthorizeStatusChange(a); err != nil {
		return nil, err
	}
	return s.apply(a, o, change, stock)
}

// Cancel moves o to Cancelled, keeping its payment status. Sales reps may
// cancel their own Pending orders; staff may cancel any non-terminal order.
func (s *StatusTransitionService) Cancel(
	a actor.Actor,
	o *order.Order,
	note string,
	stock Stock,
) (*Transition, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !s.policy.CanCancelOrder(a, o) {
		return nil, fmt.Errorf("%w: %s may not cancel order %s", ErrUnauthorized, a.Role(), o.Number())
	}
	if o.Status() == order.Cancelled {
		return nil, fmt.Errorf("%w: order %s is already cancelled", order.ErrIllegalTransition, o.Number())
	}

	return s.apply(a, o, StatusChange{
		Status:        order.Cancelled,
		PaymentStatus: o.PaymentStatus(),
		Note:          note,
	}, stock)
}

func (s *StatusTransitionService) apply(
	a actor.Actor,
	o *order.Order,
	change StatusChange,
	stock Stock,
) (*Transition, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := change.PaymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := o.Status().ValidateTransitionTo(change.Status); err != nil {
		return nil, err
	}

	effect := o.StockEffectOf(change.Status)
	if effect == order.StockReserve {
		if err := checkAvailability(o, stock); err != nil {
			return nil, err
		}
	}

	at := s.now()
	entry, err := o.ChangeStatus(change.Status, change.PaymentStatus, change.Note, a.ID(), at)
	if err != nil {
		return nil, err
	}

	tr := &Transition{Entry: entry}
	if err = moveStock(tr, o, stock, effect, movementOrigin(o, change.Status, a, at)); err != nil {
		return nil, err
	}
	return tr, nil
}

// movementOrigin follows the inventory convention: stock-outs reference the
// order number, returns append -CANCEL or -RESET to it.
func movementOrigin(o *order.Order, to order.Status, a actor.Actor, at time.Time) medicine.MovementOrigin {
	origin := medicine.MovementOrigin{
		Reference: o.Number(),
		Note:      fmt.Sprintf("Order %s entered %s", o.Number(), to),
		ActorID:   a.ID(),
		At:        at,
	}
	switch to {
	case order.Cancelled:
		origin.Reference += "-CANCEL"
		origin.Note = fmt.Sprintf("Order %s cancelled", o.Number())
	case order.Pending:
		origin.Reference += "-RESET"
		origin.Note = fmt.Sprintf("Order %s returned to %s", o.Number(), to)
	}
	return origin
}

func checkAvailability(o *order.Order, stock Stock) error {
	var errList []error
	for _, item := range o.Items() {
		m, ok := stock[item.MedicineID()]
		if !ok {
			errList = append(errList, fmt.Errorf("%w: %s is no longer in the catalog",
				medicine.ErrInsufficientStock, item.MedicineName()))
			continue
		}
		if err := m.CheckAvailability(item.Quantity()); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// moveStock runs after checkAvailability, so reservations cannot fail here.
func moveStock(
	tr *Transition,
	o *order.Order,
	stock Stock,
	effect order.StockEffect,
	origin medicine.MovementOrigin,
) error {
	if effect == order.StockUnchanged {
		return nil
	}

	for _, item := range o.Items() {
		m, ok := stock[item.MedicineID()]
		if !ok {
			continue
		}

		var (
			mv  *medicine.StockMovement
			err error
		)
		if effect == order.StockReserve {
			mv, err = m.Reserve(item.Quantity(), origin)
		} else {
			mv, err = m.Release(item.Quantity(), origin)
		}
		if err != nil {
			return err
		}
		tr.Medicines = append(tr.Medicines, m)
		tr.Movements = append(tr.Movements, mv)
	}
	return nil
}
