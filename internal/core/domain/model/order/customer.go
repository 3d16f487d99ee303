package order

import (
	"errors"
	"strings"

	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

const (
	maxCustomerNameLength  = 100
	maxCustomerPhoneLength = 15
)

// Customer is the party the order is placed for.
type Customer struct {
	name    string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer requires a name; phone and address are optional.
func NewCustomer(name, phone, address string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var nameErr, phoneErr error
	switch {
	case name == "":
		nameErr = errs.NewValueIsRequiredError("customer name")
	case len(name) > maxCustomerNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("customer name length", len(name), 1, maxCustomerNameLength)
	}
	if len(phone) > maxCustomerPhoneLength {
		phoneErr = errs.NewValueIsOutOfRangeError("customer phone length", len(phone), 0, maxCustomerPhoneLength)
	}
	if err := errors.Join(nameErr, phoneErr); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:    name,
		phone:   phone,
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

func (c Customer) Address() string {
	return c.address
}
