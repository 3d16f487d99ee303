// Package orderrepo persists the order aggregate: the orders table and its
// order_items children, mapped to and from the domain through DTOs.
package orderrepo

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Timestamps are owned by the domain,
// so gorm's automatic time tracking is disabled.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"type:varchar(12);uniqueIndex;not null"`
	SalesRepID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	CustomerName    string          `gorm:"type:varchar(100);index;not null"`
	CustomerPhone   string          `gorm:"type:varchar(15)"`
	CustomerAddress string          `gorm:"type:text"`
	DeliveryMethod  string          `gorm:"type:varchar(16);not null"`
	DeliveryAddress string          `gorm:"type:text"`
	CustomerNotes   string          `gorm:"type:text"`
	Status          string          `gorm:"type:varchar(20);index;not null"`
	PaymentStatus   string          `gorm:"type:varchar(20);index;not null"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Tax             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Shipping        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt       time.Time       `gorm:"index;not null;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime:false"`
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	StockReserved   bool           `gorm:"not null;default:false"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of order_items. Position keeps the item order of
// the aggregate.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position     int             `gorm:"not null"`
	MedicineID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	MedicineName string          `gorm:"type:varchar(200);not null"`
	Quantity     int             `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	totals := o.Totals()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      o.ID().Bytes(),
			Position:     i,
			MedicineID:   item.MedicineID().Bytes(),
			MedicineName: item.MedicineName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Number:          o.Number(),
		SalesRepID:      o.SalesRepID().Bytes(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerAddress: o.Customer().Address(),
		DeliveryMethod:  o.Delivery().Method().Code(),
		DeliveryAddress: o.Delivery().Address(),
		CustomerNotes:   o.CustomerNotes(),
		Status:          o.Status().Code(),
		PaymentStatus:   o.PaymentStatus().Code(),
		Subtotal:        totals.Subtotal.Decimal(),
		Tax:             totals.Tax.Decimal(),
		Shipping:        totals.Shipping.Decimal(),
		Discount:        totals.Discount.Decimal(),
		Total:           totals.Total.Decimal(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		ShippedAt:       o.ShippedAt(),
		DeliveredAt:     o.DeliveredAt(),
		StockReserved:   o.StockReserved(),
		Items:           items,
	}
}

// mutableColumns are the only columns an Update writes.
func mutableColumns(o *order.Order) map[string]any {
	return map[string]any{
		"status":         o.Status().Code(),
		"payment_status": o.PaymentStatus().Code(),
		"updated_at":     o.UpdatedAt(),
		"shipped_at":     o.ShippedAt(),
		"delivered_at":   o.DeliveredAt(),
		"stock_reserved": o.StockReserved(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	salesRepID, err := kernel.UUIDFromBytes(dto.SalesRepID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}
	method, err := order.DeliveryMethodFromCode(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	delivery, err := order.NewDelivery(method, dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromCode(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		Number:        dto.Number,
		SalesRepID:    salesRepID,
		Customer:      customer,
		Delivery:      delivery,
		CustomerNotes: dto.CustomerNotes,
		Items:         items,
		Status:        status,
		PaymentStatus: paymentStatus,
		Totals:        totals,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		ShippedAt:     dto.ShippedAt,
		DeliveredAt:   dto.DeliveredAt,
		StockReserved: dto.StockReserved,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	medicineID, err := kernel.UUIDFromBytes(dto.MedicineID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return order.NewItem(id, medicineID, dto.MedicineName, dto.Quantity, price)
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	subtotal, subErr := kernel.NewMoney(dto.Subtotal)
	tax, taxErr := kernel.NewMoney(dto.Tax)
	shipping, shipErr := kernel.NewMoney(dto.Shipping)
	discount, discErr := kernel.NewMoney(dto.Discount)
	total, totalErr := kernel.NewMoney(dto.Total)
	if err := errors.Join(subErr, taxErr, shipErr, discErr, totalErr); err != nil {
		return order.Totals{}, err
	}
	return order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}, nil
}
