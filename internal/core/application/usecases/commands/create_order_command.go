package commands

import (
	"errors"
	"strings"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a sales representative's request to place an order.
// The selection itself (count, duplicates, quantities) is checked by the
// handler so that authorization is decided first.
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), salesRep, customer, delivery, "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         actor.Actor
	customer      order.Customer
	delivery      order.Delivery
	customerNotes string
	lines         []services.Line

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	customer order.Customer,
	delivery order.Delivery,
	customerNotes string,
	lines []services.Line,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerNotes: strings.TrimSpace(customerNotes),
		lines:         append([]services.Line(nil), lines...),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setCustomer(customer),
		cmd.setDelivery(delivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

func (c CreateOrderCommand) CustomerNotes() string {
	return c.customerNotes
}

// Lines returns a copy of the requested medicines.
func (c CreateOrderCommand) Lines() []services.Line {
	return append([]services.Line(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}
