package ports

import (
	"context"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
)

type MedicineRepository interface {
	Add(ctx context.Context, aggregate *medicine.Medicine) error

	// Update persists stock and the active flag.
	Update(ctx context.Context, aggregate *medicine.Medicine) error

	Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// GetMany returns the medicines found among ids. Unknown ids are skipped,
	// so the result may be shorter than ids.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*medicine.Medicine, error)
}
