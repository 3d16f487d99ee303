package commands

import (
	"errors"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/guard"
)

var ErrAddMedicineCommandIsNotConstructed = errors.New(
	"AddMedicineCommand must be created via NewAddMedicineCommand constructor",
)

// AddMedicineCommand adds an entry to the medicine catalog.
type AddMedicineCommand struct { //nolint:recvcheck //using for validation
	medicineID kernel.UUID
	actor      actor.Actor
	name       string
	unitPrice  kernel.Money
	stock      int

	guard guard.ConstructorGuard
}

// NewAddMedicineCommand only checks identifiers; name, price and stock are
// validated by the medicine aggregate.
func NewAddMedicineCommand(
	medicineID kernel.UUID,
	a actor.Actor,
	name string,
	unitPrice kernel.Money,
	stock int,
) (AddMedicineCommand, error) {
	if err := errors.Join(medicineID.Validate(), a.Validate()); err != nil {
		return AddMedicineCommand{}, err
	}

	return AddMedicineCommand{
		medicineID: medicineID,
		actor:      a,
		name:       name,
		unitPrice:  unitPrice,
		stock:      stock,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddMedicineCommand) Validate() error {
	return c.guard.Validate(ErrAddMedicineCommandIsNotConstructed)
}

func (c AddMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c AddMedicineCommand) Actor() actor.Actor {
	return c.actor
}

func (c AddMedicineCommand) Name() string {
	return c.name
}

func (c AddMedicineCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c AddMedicineCommand) Stock() int {
	return c.stock
}
