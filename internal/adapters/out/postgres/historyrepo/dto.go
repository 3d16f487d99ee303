// Package historyrepo persists the append-only order status history.
package historyrepo

import (
	"time"

	"medorders/internal/adapters/out/postgres/orderrepo"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusHistoryDTO is a row of order_status_history. Rows cascade with their order.
type StatusHistoryDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID           `gorm:"type:uuid;index:idx_history_order_changed,priority:1;not null"`
	Order            *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OldStatus        string              `gorm:"type:varchar(20);not null"`
	NewStatus        string              `gorm:"type:varchar(20);not null"`
	OldPaymentStatus string              `gorm:"type:varchar(20);not null"`
	NewPaymentStatus string              `gorm:"type:varchar(20);not null"`
	Note             string              `gorm:"type:text"`
	ActorID          uuid.UUID           `gorm:"type:uuid;not null"`
	ChangedAt        time.Time           `gorm:"index:idx_history_order_changed,priority:2;not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(e *order.HistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:               e.ID().Bytes(),
		OrderID:          e.OrderID().Bytes(),
		OldStatus:        e.OldStatus().Code(),
		NewStatus:        e.NewStatus().Code(),
		OldPaymentStatus: e.OldPaymentStatus().Code(),
		NewPaymentStatus: e.NewPaymentStatus().Code(),
		Note:             e.Note(),
		ActorID:          e.ActorID().Bytes(),
		ChangedAt:        e.ChangedAt(),
	}
}

// ToDomain maps a row back to an entry. Query handlers reading history
// directly share it.
func ToDomain(dto StatusHistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	oldStatus, err := order.StatusFromCode(dto.OldStatus)
	if err != nil {
		return nil, err
	}
	newStatus, err := order.StatusFromCode(dto.NewStatus)
	if err != nil {
		return nil, err
	}
	oldPayment, err := order.PaymentStatusFromCode(dto.OldPaymentStatus)
	if err != nil {
		return nil, err
	}
	newPayment, err := order.PaymentStatusFromCode(dto.NewPaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(id, orderID, oldStatus, newStatus, oldPayment, newPayment,
		dto.Note, actorID, dto.ChangedAt)
}
