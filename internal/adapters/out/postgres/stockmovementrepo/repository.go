package stockmovementrepo

import (
	"context"

	"medorders/internal/core/domain/model/medicine"

	"gorm.io/gorm"
)

// GormStockMovementRepository implements ports.StockMovementRepository.
type GormStockMovementRepository struct {
	db *gorm.DB
}

func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Append inserts the movements in one statement. An empty call is a no-op.
func (r *GormStockMovementRepository) Append(ctx context.Context, movements ...*medicine.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	dtos := make([]StockMovementDTO, 0, len(movements))
	for _, mv := range movements {
		if err := mv.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(mv))
	}

	return r.db.WithContext(ctx).Omit("Medicine").Create(&dtos).Error
}
