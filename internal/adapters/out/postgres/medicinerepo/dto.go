// Package medicinerepo persists the medicine catalog.
package medicinerepo

import (
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MedicineDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(200);uniqueIndex;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CurrentStock int             `gorm:"not null;check:chk_medicines_stock,current_stock >= 0"`
	IsActive     bool            `gorm:"not null;default:true"`
}

func (MedicineDTO) TableName() string {
	return "medicines"
}

func fromDomain(m *medicine.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:           m.ID().Bytes(),
		Name:         m.Name(),
		UnitPrice:    m.UnitPrice().Decimal(),
		CurrentStock: m.CurrentStock(),
		IsActive:     m.IsActive(),
	}
}

func toDomain(dto MedicineDTO) (*medicine.Medicine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return medicine.RestoreMedicine(id, dto.Name, price, dto.CurrentStock, dto.IsActive)
}
