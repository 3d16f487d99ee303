package postgrestest

import (
	"testing"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// OrderSpec tweaks the order built by NewOrder.
type OrderSpec struct {
	Number       string
	SalesRepID   kernel.UUID
	CustomerName string
	Status       order.Status
	Payment      order.PaymentStatus
	CreatedAt    time.Time
	Quantity     int
}

// NewMedicine builds an active catalog entry.
func NewMedicine(t testing.TB, name, price string, stock int) *medicine.Medicine {
	t.Helper()
	m, err := medicine.NewMedicine(kernel.NewUUID(), name, kernel.MustMoney(price), stock)
	require.NoError(t, err)
	return m
}

// NewOrder builds an order holding one item per medicine. Zero fields of
// spec get defaults: a fresh number, a random sales rep, "Jane Doe", Pending, Unpaid,
// a fixed creation time and quantity 1. Orders restored in a status that
// needs stock are marked as holding it.
func NewOrder(t testing.TB, spec OrderSpec, medicines ...*medicine.Medicine) *order.Order {
	t.Helper()
	if spec.SalesRepID.Validate() != nil {
		spec.SalesRepID = kernel.NewUUID()
	}
	if spec.Number == "" {
		spec.Number = order.NewNumber()
	}
	if spec.CustomerName == "" {
		spec.CustomerName = "Jane Doe"
	}
	if spec.Status == order.UnknownStatus {
		spec.Status = order.Pending
	}
	if spec.Payment == order.UnknownPaymentStatus {
		spec.Payment = order.Unpaid
	}
	if spec.CreatedAt.IsZero() {
		spec.CreatedAt = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	}
	if spec.Quantity == 0 {
		spec.Quantity = 1
	}

	items := make([]*order.Item, 0, len(medicines))
	for _, m := range medicines {
		item, err := order.NewItem(kernel.NewUUID(), m.ID(), m.Name(), spec.Quantity, m.UnitPrice())
		require.NoError(t, err)
		items = append(items, item)
	}

	customer, err := order.NewCustomer(spec.CustomerName, "+15550123", "3 Oak Road")
	require.NoError(t, err)
	delivery, err := order.NewDelivery(order.HomeDelivery, "3 Oak Road")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:            kernel.NewUUID(),
		Number:        spec.Number,
		SalesRepID:    spec.SalesRepID,
		Customer:      customer,
		Delivery:      delivery,
		Items:         items,
		Status:        spec.Status,
		PaymentStatus: spec.Payment,
		Totals:        order.DefaultPricing().Quote(items, order.HomeDelivery),
		CreatedAt:     spec.CreatedAt,
		UpdatedAt:     spec.CreatedAt,
		StockReserved: spec.Status.HoldsStock(),
	})
	require.NoError(t, err)
	return o
}
