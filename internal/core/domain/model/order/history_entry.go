package order

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via RestoreHistoryEntry or Order.ChangeStatus")

// HistoryEntry records one status/payment change of an order. It has no
// setters; once created it is never modified.
type HistoryEntry struct {
	id               kernel.UUID
	orderID          kernel.UUID
	oldStatus        Status
	newStatus        Status
	oldPaymentStatus PaymentStatus
	newPaymentStatus PaymentStatus
	note             string
	actorID          kernel.UUID
	changedAt        time.Time

	isConstructed bool
}

// RestoreHistoryEntry rebuilds an entry from persistence.
func RestoreHistoryEntry(
	id, orderID kernel.UUID,
	oldStatus, newStatus Status,
	oldPaymentStatus, newPaymentStatus PaymentStatus,
	note string,
	actorID kernel.UUID,
	changedAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		actorID.Validate(),
		oldStatus.Validate(),
		newStatus.Validate(),
		oldPaymentStatus.Validate(),
		newPaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:               id,
		orderID:          orderID,
		oldStatus:        oldStatus,
		newStatus:        newStatus,
		oldPaymentStatus: oldPaymentStatus,
		newPaymentStatus: newPaymentStatus,
		note:             note,
		actorID:          actorID,
		changedAt:        changedAt,
		isConstructed:    true,
	}, nil
}

func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

func (h *HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

func (h *HistoryEntry) OldStatus() Status {
	return h.oldStatus
}

func (h *HistoryEntry) NewStatus() Status {
	return h.newStatus
}

func (h *HistoryEntry) OldPaymentStatus() PaymentStatus {
	return h.oldPaymentStatus
}

func (h *HistoryEntry) NewPaymentStatus() PaymentStatus {
	return h.newPaymentStatus
}

func (h *HistoryEntry) Note() string {
	return h.note
}

func (h *HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

func (h *HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}
