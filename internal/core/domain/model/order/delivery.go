package order

import (
	"errors"
	"fmt"
	"strings"

	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

// DeliveryMethod is how the customer receives the order.
type DeliveryMethod int

const (
	UnknownDeliveryMethod DeliveryMethod = iota
	// Pickup is collection at the pharmacy counter; no shipping cost.
	Pickup
	// HomeDelivery is shipped to the delivery address; charged the delivery fee.
	HomeDelivery
)

var deliveryMethodCodes = map[DeliveryMethod]string{
	Pickup:       "pickup",
	HomeDelivery: "delivery",
}

// DeliveryMethodFromCode parses "pickup" or "delivery".
func DeliveryMethodFromCode(code string) (DeliveryMethod, error) {
	for m, c := range deliveryMethodCodes {
		if c == code {
			return m, nil
		}
	}
	return UnknownDeliveryMethod, errs.NewValueIsInvalidErrorWithCause(
		"delivery method is invalid",
		fmt.Errorf("%q is not a valid delivery method", code),
	)
}

func (m DeliveryMethod) Validate() error {
	if _, ok := deliveryMethodCodes[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery method is invalid",
			fmt.Errorf("%d is not a valid delivery method", m),
		)
	}
	return nil
}

func (m DeliveryMethod) Code() string {
	if c, ok := deliveryMethodCodes[m]; ok {
		return c
	}
	return "unknown"
}

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery groups the delivery method with where and how to hand over the order.
type Delivery struct {
	method  DeliveryMethod
	address string
	guard   guard.ConstructorGuard
}

// NewDelivery requires an address for HomeDelivery.
func NewDelivery(method DeliveryMethod, address string) (Delivery, error) {
	if err := method.Validate(); err != nil {
		return Delivery{}, err
	}
	address = strings.TrimSpace(address)
	if method == HomeDelivery && address == "" {
		return Delivery{}, errs.NewValueIsRequiredError("delivery address")
	}
	return Delivery{method: method, address: address, guard: guard.NewConstructorGuard()}, nil
}

func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d Delivery) Method() DeliveryMethod {
	return d.method
}

func (d Delivery) Address() string {
	return d.address
}
