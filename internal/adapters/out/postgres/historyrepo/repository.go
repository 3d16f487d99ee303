package historyrepo

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository. It only inserts
// and reads; history rows are never updated or deleted through it.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Omit("Order").Create(&dto).Error
}

// ListByOrder returns entries oldest first. Equal timestamps are ordered by
// id so repeated reads agree.
func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("changed_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, mapErr := ToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
