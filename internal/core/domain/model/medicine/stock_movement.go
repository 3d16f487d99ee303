package medicine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

var ErrStockMovementIsNotConstructed = errors.New("StockMovement must be created via Medicine.Reserve, Medicine.Release or RestoreStockMovement")

// MovementType tells why stock changed.
type MovementType int

const (
	UnknownMovementType MovementType = iota
	// StockOut is stock taken by an order entering fulfilment.
	StockOut
	// StockReturn is stock given back by an order that did not ship.
	StockReturn
)

var movementTypeCodes = map[MovementType]string{
	StockOut:    "out",
	StockReturn: "return",
}

func MovementTypeFromCode(code string) (MovementType, error) {
	for t, c := range movementTypeCodes {
		if c == code {
			return t, nil
		}
	}
	return UnknownMovementType, errs.NewValueIsInvalidErrorWithCause("movement type",
		fmt.Errorf("%q is not a valid movement type", code))
}

func (t MovementType) Code() string {
	if c, ok := movementTypeCodes[t]; ok {
		return c
	}
	return "unknown"
}

// MovementOrigin describes who moved stock and on what grounds.
type MovementOrigin struct {
	Reference string
	Note      string
	ActorID   kernel.UUID
	At        time.Time
}

func (o MovementOrigin) validate() error {
	var refErr error
	if strings.TrimSpace(o.Reference) == "" {
		refErr = errs.NewValueIsRequiredError("movement reference")
	}
	var actorErr error
	if err := o.ActorID.Validate(); err != nil {
		actorErr = fmt.Errorf("movement actor: %w", err)
	}
	return errors.Join(refErr, actorErr)
}

// StockMovement is an immutable record of one change to a medicine's stock.
// Quantity is negative for stock taken out and positive for stock returned.
type StockMovement struct {
	id           kernel.UUID
	medicineID   kernel.UUID
	movementType MovementType
	quantity     int
	reference    string
	note         string
	actorID      kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

func newStockMovement(medicineID kernel.UUID, t MovementType, quantity int, origin MovementOrigin) *StockMovement {
	return &StockMovement{
		id:            kernel.NewUUID(),
		medicineID:    medicineID,
		movementType:  t,
		quantity:      quantity,
		reference:     strings.TrimSpace(origin.Reference),
		note:          strings.TrimSpace(origin.Note),
		actorID:       origin.ActorID,
		createdAt:     origin.At,
		isConstructed: true,
	}
}

// RestoreStockMovement rebuilds a movement from persistence.
func RestoreStockMovement(
	id, medicineID kernel.UUID,
	movementType MovementType,
	quantity int,
	reference, note string,
	actorID kernel.UUID,
	createdAt time.Time,
) (*StockMovement, error) {
	var typeErr error
	if _, ok := movementTypeCodes[movementType]; !ok {
		typeErr = errs.NewValueIsInvalidError("movement type")
	}
	if err := errors.Join(id.Validate(), medicineID.Validate(), actorID.Validate(), typeErr); err != nil {
		return nil, err
	}

	return &StockMovement{
		id:            id,
		medicineID:    medicineID,
		movementType:  movementType,
		quantity:      quantity,
		reference:     reference,
		note:          note,
		actorID:       actorID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (s *StockMovement) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockMovementIsNotConstructed
	}
	return nil
}

func (s *StockMovement) ID() kernel.UUID {
	return s.id
}

func (s *StockMovement) MedicineID() kernel.UUID {
	return s.medicineID
}

func (s *StockMovement) Type() MovementType {
	return s.movementType
}

// Quantity is signed: negative for StockOut, positive for StockReturn.
func (s *StockMovement) Quantity() int {
	return s.quantity
}

// Reference names the document behind the movement, e.g. an order number.
func (s *StockMovement) Reference() string {
	return s.reference
}

func (s *StockMovement) Note() string {
	return s.note
}

func (s *StockMovement) ActorID() kernel.UUID {
	return s.actorID
}

func (s *StockMovement) CreatedAt() time.Time {
	return s.createdAt
}
