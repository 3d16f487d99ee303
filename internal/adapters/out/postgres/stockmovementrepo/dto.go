// Package stockmovementrepo persists the inventory ledger: one row per
// stock change, never updated or deleted.
package stockmovementrepo

import (
	"time"

	"medorders/internal/adapters/out/postgres/medicinerepo"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"

	"github.com/google/uuid"
)

type StockMovementDTO struct {
	ID           uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	MedicineID   uuid.UUID                 `gorm:"type:uuid;index:idx_stock_movements_medicine_created,priority:1;not null"`
	Medicine     *medicinerepo.MedicineDTO `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE"`
	MovementType string                    `gorm:"type:varchar(20);not null"`
	Quantity     int                       `gorm:"not null"`
	Reference    string                    `gorm:"type:varchar(50);index;not null"`
	Note         string                    `gorm:"type:text"`
	ActorID      uuid.UUID                 `gorm:"type:uuid;not null"`
	CreatedAt    time.Time                 `gorm:"index:idx_stock_movements_medicine_created,priority:2;not null;autoCreateTime:false"`
}

func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(mv *medicine.StockMovement) StockMovementDTO {
	return StockMovementDTO{
		ID:           mv.ID().Bytes(),
		MedicineID:   mv.MedicineID().Bytes(),
		MovementType: mv.Type().Code(),
		Quantity:     mv.Quantity(),
		Reference:    mv.Reference(),
		Note:         mv.Note(),
		ActorID:      mv.ActorID().Bytes(),
		CreatedAt:    mv.CreatedAt(),
	}
}

// ToDomain maps a ledger row back to a movement.
func ToDomain(dto StockMovementDTO) (*medicine.StockMovement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	medicineID, err := kernel.UUIDFromBytes(dto.MedicineID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}
	movementType, err := medicine.MovementTypeFromCode(dto.MovementType)
	if err != nil {
		return nil, err
	}

	return medicine.RestoreStockMovement(id, medicineID, movementType, dto.Quantity,
		dto.Reference, dto.Note, actorID, dto.CreatedAt)
}
