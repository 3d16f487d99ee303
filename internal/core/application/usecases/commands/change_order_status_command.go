package commands

import (
	"errors"
	"strings"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to set an order's status and payment status.
// Status values are kept as submitted codes; the handler parses them after
// the actor has been authorized.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	actor             actor.Actor
	statusCode        string
	paymentStatusCode string
	note              string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	a actor.Actor,
	statusCode, paymentStatusCode, note string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), a.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:           orderID,
		actor:             a,
		statusCode:        strings.TrimSpace(statusCode),
		paymentStatusCode: strings.TrimSpace(paymentStatusCode),
		note:              strings.TrimSpace(note),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Actor() actor.Actor {
	return c.actor
}

func (c ChangeOrderStatusCommand) StatusCode() string {
	return c.statusCode
}

func (c ChangeOrderStatusCommand) PaymentStatusCode() string {
	return c.paymentStatusCode
}

func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}
