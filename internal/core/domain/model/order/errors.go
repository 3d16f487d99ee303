package order

import "errors"

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidStatus is returned for a status or payment status outside its enumeration.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrIllegalTransition is returned when the requested status leaves a terminal state.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidSelection is returned when the medicine selection of a new order is unacceptable.
	ErrInvalidSelection = errors.New("invalid selection")
)
