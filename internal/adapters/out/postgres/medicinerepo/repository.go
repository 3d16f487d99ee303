package medicinerepo

import (
	"context"
	"errors"
	"fmt"

	"medorders/internal/adapters/out/postgres/pgerr"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormMedicineRepository struct {
	db *gorm.DB
}

func NewGormMedicineRepository(db *gorm.DB) *GormMedicineRepository {
	return &GormMedicineRepository{db: db}
}

func (r *GormMedicineRepository) Add(ctx context.Context, aggregate *medicine.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("medicine name",
				fmt.Errorf("%q already exists", aggregate.Name()))
		}
		return err
	}

	return nil
}

// Update writes the stock level and active flag.
func (r *GormMedicineRepository) Update(ctx context.Context, aggregate *medicine.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"current_stock": aggregate.CurrentStock(),
			"is_active":     aggregate.IsActive(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", aggregate.ID().String())
	}

	return nil
}

func (r *GormMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany locks the selected rows FOR UPDATE so concurrent status changes
// cannot oversell the same stock.
func (r *GormMedicineRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*medicine.Medicine, error) {
	if len(ids) == 0 {
		return []*medicine.Medicine{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MedicineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	medicines := make([]*medicine.Medicine, 0, len(dtos))
	for _, dto := range dtos {
		m, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		medicines = append(medicines, m)
	}
	return medicines, nil
}
