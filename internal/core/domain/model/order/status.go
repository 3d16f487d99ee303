package order

import (
	"fmt"
)

// Status is the fulfilment state of an order.
//
//	Pending ──> Processing ──> ReadyForPickup ──> Shipped ──> Delivered
//	   │            │                │               │
//	   └────────────┴────────────────┴───────────────┴──> Cancelled
//
// Any non-terminal status may move to any other status (staff correct
// mistakes through the same form). Delivered and Cancelled are absorbing.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Processing means the pharmacy has started fulfilment; stock is taken.
	Processing

	// ReadyForPickup means the order is packed and waiting at the counter.
	ReadyForPickup

	// Shipped means the order has left the pharmacy.
	Shipped

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

var statusCodes = map[Status]string{
	Pending:        "pending",
	Processing:     "processing",
	ReadyForPickup: "ready_for_pickup",
	Shipped:        "shipped",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

var statusNames = map[Status]string{
	UnknownStatus:  "Unknown",
	Pending:        "Pending",
	Processing:     "Processing",
	ReadyForPickup: "Ready for Pickup",
	Shipped:        "Shipped",
	Delivered:      "Delivered",
	Cancelled:      "Cancelled",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, ReadyForPickup, Shipped, Delivered, Cancelled}
}

// StatusCodes returns the persisted codes of Statuses, in the same order.
func StatusCodes() []string {
	codes := make([]string, 0, len(statusCodes))
	for _, s := range Statuses() {
		codes = append(codes, s.Code())
	}
	return codes
}

// StatusFromCode parses a persisted or submitted status code.
func StatusFromCode(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return UnknownStatus, fmt.Errorf("%w: %q is not a valid order status", ErrInvalidStatus, code)
}

// Validate returns ErrInvalidStatus for UnknownStatus and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid order status", ErrInvalidStatus, s)
	}
	return nil
}

// Code returns the persisted form, e.g. "ready_for_pickup".
func (s Status) Code() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "unknown"
}

// String returns the display name, e.g. "Ready for Pickup".
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}

// IsTerminal reports Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// HoldsStock reports whether an order in this status needs its units taken
// out of stock.
func (s Status) HoldsStock() bool {
	switch s {
	case Processing, ReadyForPickup, Shipped, Delivered:
		return true
	default:
		return false
	}
}

// ValidateTransitionTo checks that moving from s to next is allowed.
//
// Returns ErrInvalidStatus when either side is not a valid status and
// ErrIllegalTransition when s is terminal and next differs from s.
// Resubmitting the current status is always allowed.
func (s Status) ValidateTransitionTo(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() && next != s {
		return fmt.Errorf("%w: %s is terminal and cannot become %s", ErrIllegalTransition, s, next)
	}
	return nil
}

// StockEffect describes what a status change does to medicine stock.
type StockEffect int

const (
	// StockUnchanged leaves stock as it is.
	StockUnchanged StockEffect = iota
	// StockReserve takes every item's quantity out of stock.
	StockReserve
	// StockRelease puts every item's quantity back.
	StockRelease
)
