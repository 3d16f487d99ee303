package order

import (
	"errors"
	"fmt"
	"strings"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. The unit price is copied from the catalog
// when the order is created and never follows later price changes.
type Item struct {
	id           kernel.UUID
	medicineID   kernel.UUID
	medicineName string
	quantity     int
	unitPrice    kernel.Money

	isConstructed bool
}

// NewItem validates a line. It is also used to restore persisted items.
func NewItem(id, medicineID kernel.UUID, medicineName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMedicine(medicineID, medicineName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MedicineID() kernel.UUID {
	return i.medicineID
}

func (i *Item) MedicineName() string {
	return i.medicineName
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice is quantity × unit price.
func (i *Item) TotalPrice() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMedicine(medicineID kernel.UUID, name string) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("medicine name")
	}
	i.medicineID = medicineID
	i.medicineName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity %d is not greater than 0", ErrInvalidSelection, quantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", errors.New("unit price must be greater than 0"))
	}
	i.unitPrice = price
	return nil
}
