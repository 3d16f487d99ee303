package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medorders/internal/core/domain/model/kernel"
)

// MaxItems is the largest number of distinct medicines one order may hold.
const MaxItems = 5

// Order is the aggregate root for a customer order placed by a sales
// representative. It owns its items and produces a HistoryEntry for every
// status change.
//
// Order follows these invariants:
//   - Holds between 1 and MaxItems items, each for a different medicine
//   - Item prices are snapshots taken at creation
//   - Status and payment status are always members of their enumerations
//   - Delivered and Cancelled are absorbing
//   - Holds its items' units out of stock at most once at a time
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	number        string
	salesRepID    kernel.UUID
	customer      Customer
	delivery      Delivery
	customerNotes string
	items         []*Item
	status        Status
	paymentStatus PaymentStatus
	totals        Totals
	createdAt     time.Time
	updatedAt     time.Time
	shippedAt     *time.Time
	deliveredAt   *time.Time
	stockReserved bool

	isConstructed bool
}

// NewOrder creates a Pending, Unpaid order and prices it with pricing.
//
// Returns an error wrapping ErrInvalidSelection when items is empty, longer
// than MaxItems, or names the same medicine twice.
func NewOrder(
	id kernel.UUID,
	number string,
	salesRepID kernel.UUID,
	customer Customer,
	delivery Delivery,
	customerNotes string,
	items []*Item,
	pricing Pricing,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: Unpaid,
		customerNotes: strings.TrimSpace(customerNotes),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setSalesRep(salesRepID),
		order.setCustomer(customer),
		order.setDelivery(delivery),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totals = pricing.Quote(order.items, delivery.Method())
	return order, nil
}

// State is the persisted form of an Order, used by repositories to rebuild it.
type State struct {
	ID            kernel.UUID
	Number        string
	SalesRepID    kernel.UUID
	Customer      Customer
	Delivery      Delivery
	CustomerNotes string
	Items         []*Item
	Status        Status
	PaymentStatus PaymentStatus
	Totals        Totals
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	StockReserved bool
}

// RestoreOrder rebuilds an order from persistence. Totals are taken as
// stored, not recomputed.
func RestoreOrder(state State) (*Order, error) {
	order := &Order{
		customerNotes: state.CustomerNotes,
		totals:        state.Totals,
		createdAt:     state.CreatedAt,
		updatedAt:     state.UpdatedAt,
		shippedAt:     state.ShippedAt,
		deliveredAt:   state.DeliveredAt,
		stockReserved: state.StockReserved,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(state.ID),
		order.setNumber(state.Number),
		order.setSalesRep(state.SalesRepID),
		order.setCustomer(state.Customer),
		order.setDelivery(state.Delivery),
		order.setItems(state.Items),
		state.Status.Validate(),
		state.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = state.Status
	order.paymentStatus = state.PaymentStatus
	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

// SalesRepID is the actor who created the order.
func (o *Order) SalesRepID() kernel.UUID {
	return o.salesRepID
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Delivery() Delivery {
	return o.delivery
}

func (o *Order) CustomerNotes() string {
	return o.customerNotes
}

// Items returns a copy of the item slice; the items themselves are immutable.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ShippedAt is set the first time the order reaches Shipped.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt is set the first time the order reaches Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// StockReserved reports whether the order's units are currently out of stock.
func (o *Order) StockReserved() bool {
	return o.stockReserved
}

// StockEffectOf returns the stock movement that moving to status would cause.
// Units are taken once, when the order first needs them, and given back only
// if the order returns to a status without stock before it ever shipped.
func (o *Order) StockEffectOf(status Status) StockEffect {
	switch {
	case !o.stockReserved && status.HoldsStock():
		return StockReserve
	case o.stockReserved && !status.HoldsStock() && o.shippedAt == nil:
		return StockRelease
	default:
		return StockUnchanged
	}
}

// IsOwnedBy reports whether actorID created the order.
func (o *Order) IsOwnedBy(actorID kernel.UUID) bool {
	return o.salesRepID.IsEqual(actorID)
}

// ChangeStatus moves the order to status and paymentStatus and returns the
// single HistoryEntry describing the change. Resubmitting the current values
// is accepted and still produces an entry.
//
// Returns an error wrapping ErrInvalidStatus for values outside their
// enumerations and ErrIllegalTransition when the order is terminal and status
// differs from the current one. On error the order is left unchanged.
func (o *Order) ChangeStatus(
	status Status,
	paymentStatus PaymentStatus,
	note string,
	actorID kernel.UUID,
	at time.Time,
) (*HistoryEntry, error) {
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := o.status.ValidateTransitionTo(status); err != nil {
		return nil, err
	}
	if err := actorID.Validate(); err != nil {
		return nil, fmt.Errorf("actor: %w", err)
	}

	entry := &HistoryEntry{
		id:               kernel.NewUUID(),
		orderID:          o.id,
		oldStatus:        o.status,
		newStatus:        status,
		oldPaymentStatus: o.paymentStatus,
		newPaymentStatus: paymentStatus,
		note:             strings.TrimSpace(note),
		actorID:          actorID,
		changedAt:        at,
		isConstructed:    true,
	}

	switch o.StockEffectOf(status) {
	case StockReserve:
		o.stockReserved = true
	case StockRelease:
		o.stockReserved = false
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.updatedAt = at

	if status == Shipped && o.shippedAt == nil {
		o.shippedAt = &at
	}
	if status == Delivered && o.deliveredAt == nil {
		o.deliveredAt = &at
	}

	return entry, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := ValidateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setSalesRep(salesRepID kernel.UUID) error {
	if err := salesRepID.Validate(); err != nil {
		return fmt.Errorf("sales rep: %w", err)
	}
	o.salesRepID = salesRepID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItems(items []*Item) error {
	switch {
	case len(items) == 0:
		return fmt.Errorf("%w: an order needs at least one item", ErrInvalidSelection)
	case len(items) > MaxItems:
		return fmt.Errorf("%w: %d items exceed the limit of %d", ErrInvalidSelection, len(items), MaxItems)
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.MedicineID()]; dup {
			return fmt.Errorf("%w: medicine %s is selected more than once", ErrInvalidSelection, item.MedicineName())
		}
		seen[item.MedicineID()] = struct{}{}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
