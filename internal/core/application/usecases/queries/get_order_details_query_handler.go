package queries

import (
	"context"
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler loads one order for display. Orders the
// requester may not see are reported as not found.
type GetOrderDetailsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB, policy services.AccessPolicy) (*GetOrderDetailsQueryHandler, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &GetOrderDetailsQueryHandler{db: db, policy: policy}, nil
}

type orderDetailsRow struct {
	ID              uuid.UUID
	Number          string
	SalesRepID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DeliveryMethod  string
	DeliveryAddress string
	CustomerNotes   string
	Status          string
	PaymentStatus   string
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
}

type itemRow struct {
	MedicineID   uuid.UUID
	MedicineName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

type historyRow struct {
	OldStatus        string
	NewStatus        string
	OldPaymentStatus string
	NewPaymentStatus string
	Note             string
	ActorID          uuid.UUID
	ActorUsername    *string
	ChangedAt        time.Time
}

func (h *GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	notFound := errs.NewObjectNotFoundError("order", query.orderID.String())

	var rows []orderDetailsRow
	err := db.Raw(`
		SELECT id, number, sales_rep_id, customer_name, customer_phone, customer_address,
			delivery_method, delivery_address, customer_notes, status, payment_status,
			subtotal, tax, shipping, discount, total,
			created_at, updated_at, shipped_at, delivered_at
		FROM orders
		WHERE id = ?
	`, query.orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderDetailsQueryResponse{}, notFound
	}
	row := rows[0]

	if !h.policy.CanViewAllOrders(query.requester) && query.requester.ID().Bytes() != row.SalesRepID {
		return GetOrderDetailsQueryResponse{}, notFound
	}

	details, err := row.toReadModel()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var items []itemRow
	err = db.Raw(`
		SELECT medicine_id, medicine_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.orderID.Bytes()).Scan(&items).Error
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	for _, item := range items {
		view, mapErr := item.toReadModel()
		if mapErr != nil {
			return GetOrderDetailsQueryResponse{}, mapErr
		}
		details.Items = append(details.Items, view)
	}

	var history []historyRow
	err = db.Raw(`
		SELECT h.old_status, h.new_status, h.old_payment_status, h.new_payment_status,
			h.note, h.actor_id, u.username AS actor_username, h.changed_at
		FROM order_status_history h
		LEFT JOIN users u ON u.id = h.actor_id
		WHERE h.order_id = ?
		ORDER BY h.changed_at ASC, h.id ASC
	`, query.orderID.Bytes()).Scan(&history).Error
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	details.History = make([]HistoryView, 0, len(history))
	for _, entry := range history {
		view, mapErr := entry.toReadModel()
		if mapErr != nil {
			return GetOrderDetailsQueryResponse{}, mapErr
		}
		details.History = append(details.History, view)
	}

	return details, nil
}

func (row orderDetailsRow) toReadModel() (GetOrderDetailsQueryResponse, error) {
	id, idErr := kernel.UUIDFromBytes(row.ID[:])
	salesRepID, repErr := kernel.UUIDFromBytes(row.SalesRepID[:])
	method, methodErr := order.DeliveryMethodFromCode(row.DeliveryMethod)
	status, statusErr := order.StatusFromCode(row.Status)
	paymentStatus, paymentErr := order.PaymentStatusFromCode(row.PaymentStatus)
	if err := errors.Join(idErr, repErr, methodErr, statusErr, paymentErr); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	totals, err := totalsOf(row.Subtotal, row.Tax, row.Shipping, row.Discount, row.Total)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return GetOrderDetailsQueryResponse{
		ID:              id,
		Number:          row.Number,
		SalesRepID:      salesRepID,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerAddress: row.CustomerAddress,
		DeliveryMethod:  method,
		DeliveryAddress: row.DeliveryAddress,
		CustomerNotes:   row.CustomerNotes,
		Status:          status,
		PaymentStatus:   paymentStatus,
		Totals:          totals,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		ShippedAt:       row.ShippedAt,
		DeliveredAt:     row.DeliveredAt,
		Items:           []OrderItemView{},
	}, nil
}

func (row itemRow) toReadModel() (OrderItemView, error) {
	medicineID, err := kernel.UUIDFromBytes(row.MedicineID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	unitPrice, err := kernel.NewMoney(row.UnitPrice)
	if err != nil {
		return OrderItemView{}, err
	}
	return OrderItemView{
		MedicineID:   medicineID,
		MedicineName: row.MedicineName,
		Quantity:     row.Quantity,
		UnitPrice:    unitPrice,
		LineTotal:    unitPrice.Times(row.Quantity),
	}, nil
}

func (row historyRow) toReadModel() (HistoryView, error) {
	oldStatus, oldErr := order.StatusFromCode(row.OldStatus)
	newStatus, newErr := order.StatusFromCode(row.NewStatus)
	oldPayment, oldPaymentErr := order.PaymentStatusFromCode(row.OldPaymentStatus)
	newPayment, newPaymentErr := order.PaymentStatusFromCode(row.NewPaymentStatus)
	actorID, actorErr := kernel.UUIDFromBytes(row.ActorID[:])
	if err := errors.Join(oldErr, newErr, oldPaymentErr, newPaymentErr, actorErr); err != nil {
		return HistoryView{}, err
	}

	view := HistoryView{
		OldStatus:        oldStatus,
		NewStatus:        newStatus,
		OldPaymentStatus: oldPayment,
		NewPaymentStatus: newPayment,
		Note:             row.Note,
		ActorID:          actorID,
		ChangedAt:        row.ChangedAt,
	}
	if row.ActorUsername != nil {
		view.ActorUsername = *row.ActorUsername
	}
	return view, nil
}

func totalsOf(subtotal, tax, shipping, discount, total decimal.Decimal) (order.Totals, error) {
	var errList []error
	money := func(d decimal.Decimal) kernel.Money {
		m, err := kernel.NewMoney(d)
		if err != nil {
			errList = append(errList, err)
		}
		return m
	}

	totals := order.Totals{
		Subtotal: money(subtotal),
		Tax:      money(tax),
		Shipping: money(shipping),
		Discount: money(discount),
		Total:    money(total),
	}
	return totals, errors.Join(errList...)
}
