package queries

import (
	"context"
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMedicinesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListMedicinesQueryHandler(db *gorm.DB, policy services.AccessPolicy) (*ListMedicinesQueryHandler, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &ListMedicinesQueryHandler{db: db, policy: policy}, nil
}

func (h *ListMedicinesQueryHandler) Handle(ctx context.Context, query ListMedicinesQuery) ([]MedicineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("medicines")
	if !query.includeInactive || !h.policy.CanManageCatalog(query.requester) {
		db = db.Where("is_active")
	}

	var rows []struct {
		ID           uuid.UUID
		Name         string
		UnitPrice    decimal.Decimal
		CurrentStock int
		IsActive     bool
	}
	if err := db.Select("id, name, unit_price, current_stock, is_active").Order("name").Scan(&rows).Error; err != nil {
		return nil, err
	}

	medicines := make([]MedicineView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(row.UnitPrice)
		if err != nil {
			return nil, err
		}
		medicines = append(medicines, MedicineView{
			ID:           id,
			Name:         row.Name,
			UnitPrice:    price,
			CurrentStock: row.CurrentStock,
			IsActive:     row.IsActive,
		})
	}
	return medicines, nil
}
