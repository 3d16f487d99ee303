// Package medicine holds the catalog entry an order item points at. The
// order domain reads the current unit price (snapshotted into items at
// creation) and moves stock when fulfilment starts or is abandoned. Every
// move yields a StockMovement for the inventory ledger.
package medicine

import (
	"errors"
	"fmt"
	"strings"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

var (
	ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine or RestoreMedicine constructor")
	// ErrInsufficientStock is returned when an order asks for more units than are on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Medicine is a sellable catalog item with its on-hand stock.
type Medicine struct {
	id           kernel.UUID
	name         string
	unitPrice    kernel.Money
	currentStock int
	isActive     bool

	isConstructed bool
}

// NewMedicine creates an active catalog entry.
func NewMedicine(id kernel.UUID, name string, unitPrice kernel.Money, stock int) (*Medicine, error) {
	return RestoreMedicine(id, name, unitPrice, stock, true)
}

// RestoreMedicine rebuilds a medicine from persistence.
func RestoreMedicine(id kernel.UUID, name string, unitPrice kernel.Money, stock int, isActive bool) (*Medicine, error) {
	m := &Medicine{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setUnitPrice(unitPrice),
		m.setStock(stock),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Medicine) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMedicineIsNotConstructed
	}
	return nil
}

func (m *Medicine) ID() kernel.UUID {
	return m.id
}

func (m *Medicine) Name() string {
	return m.name
}

func (m *Medicine) UnitPrice() kernel.Money {
	return m.unitPrice
}

func (m *Medicine) CurrentStock() int {
	return m.currentStock
}

func (m *Medicine) IsActive() bool {
	return m.isActive
}

// CheckAvailability reports ErrInsufficientStock when quantity exceeds stock.
func (m *Medicine) CheckAvailability(quantity int) error {
	if quantity > m.currentStock {
		return fmt.Errorf("%w for %s: available %d, required %d",
			ErrInsufficientStock, m.name, m.currentStock, quantity)
	}
	return nil
}

// Reserve takes quantity units out of stock and returns the StockOut
// movement recording it. Nothing changes on error.
func (m *Medicine) Reserve(quantity int, origin MovementOrigin) (*StockMovement, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, m.currentStock)
	}
	if err := origin.validate(); err != nil {
		return nil, err
	}
	if err := m.CheckAvailability(quantity); err != nil {
		return nil, err
	}
	m.currentStock -= quantity
	return newStockMovement(m.id, StockOut, -quantity, origin), nil
}

// Release puts quantity units back into stock and returns the StockReturn
// movement recording it.
func (m *Medicine) Release(quantity int, origin MovementOrigin) (*StockMovement, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := origin.validate(); err != nil {
		return nil, err
	}
	m.currentStock += quantity
	return newStockMovement(m.id, StockReturn, quantity, origin), nil
}

// Deactivate removes the medicine from new orders; existing items keep their snapshot.
func (m *Medicine) Deactivate() {
	m.isActive = false
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("medicine name")
	}
	m.name = name
	return nil
}

func (m *Medicine) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", errors.New("unit price must be greater than 0"))
	}
	m.unitPrice = price
	return nil
}

func (m *Medicine) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	m.currentStock = stock
	return nil
}
