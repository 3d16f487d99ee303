package queries

import (
	"errors"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/guard"
)

var ErrListMedicinesQueryIsNotConstructed = errors.New(
	"ListMedicinesQuery must be created via NewListMedicinesQuery constructor",
)

// ListMedicinesQuery asks for the catalog sorted by name. Inactive entries
// are only returned to catalog managers who ask for them.
type ListMedicinesQuery struct {
	requester       actor.Actor
	includeInactive bool
	guard           guard.ConstructorGuard
}

func NewListMedicinesQuery(requester actor.Actor, includeInactive bool) (ListMedicinesQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListMedicinesQuery{}, err
	}
	return ListMedicinesQuery{
		requester:       requester,
		includeInactive: includeInactive,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListMedicinesQuery) Validate() error {
	return q.guard.Validate(ErrListMedicinesQueryIsNotConstructed)
}

type MedicineView struct {
	ID           kernel.UUID
	Name         string
	UnitPrice    kernel.Money
	CurrentStock int
	IsActive     bool
}
