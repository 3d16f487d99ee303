package queries

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery asks for one order with its items and status timeline.
type GetOrderDetailsQuery struct {
	requester actor.Actor
	orderID   kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(requester actor.Actor, orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{
		requester: requester,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderItemView is an item line with its computed total.
type OrderItemView struct {
	MedicineID   kernel.UUID
	MedicineName string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
}

// HistoryView is one entry of the status timeline. ActorUsername is empty
// when the user no longer exists.
type HistoryView struct {
	OldStatus        order.Status
	NewStatus        order.Status
	OldPaymentStatus order.PaymentStatus
	NewPaymentStatus order.PaymentStatus
	Note             string
	ActorID          kernel.UUID
	ActorUsername    string
	ChangedAt        time.Time
}

// GetOrderDetailsQueryResponse is the full read model of an order.
// History is ordered oldest first.
type GetOrderDetailsQueryResponse struct {
	ID              kernel.UUID
	Number          string
	SalesRepID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DeliveryMethod  order.DeliveryMethod
	DeliveryAddress string
	CustomerNotes   string
	Status          order.Status
	PaymentStatus   order.PaymentStatus
	Totals          order.Totals
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	Items           []OrderItemView
	History         []HistoryView
}
