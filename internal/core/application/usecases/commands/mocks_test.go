package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, e *order.HistoryEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*order.HistoryEntry), args.Error(1)
}

type MockMedicineRepository struct{ mock.Mock }

func (m *MockMedicineRepository) Add(ctx context.Context, med *medicine.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, med *medicine.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	args := m.Called(ctx, id)
	if med, ok := args.Get(0).(*medicine.Medicine); ok {
		return med, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMedicineRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*medicine.Medicine, error) {
	args := m.Called(ctx, ids)
	if meds, ok := args.Get(0).([]*medicine.Medicine); ok {
		return meds, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStockMovementRepository struct{ mock.Mock }

func (m *MockStockMovementRepository) Append(ctx context.Context, movements ...*medicine.StockMovement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) MedicineRepository() ports.MedicineRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicineRepository)
}

func (m *MockUoW) StockMovementRepository() ports.StockMovementRepository {
	args := m.Called()
	return args.Get(0).(ports.StockMovementRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMedicineUoWFactory struct{ mock.Mock }

func (m *MockMedicineUoWFactory) Create() commands.MedicineUoW {
	args := m.Called()
	return args.Get(0).(commands.MedicineUoW)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Authenticate(ctx context.Context, username, password string) (actor.Actor, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(actor.Actor), args.Error(1)
}

func (m *MockActorRepository) Register(ctx context.Context, a actor.Actor, password string) error {
	args := m.Called(ctx, a, password)
	return args.Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (actor.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(actor.Actor), args.Error(1)
}

type MockStatsInvalidator struct{ mock.Mock }

func (m *MockStatsInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockUoW wires the repositories into a MockUoW; repository accessors may
// be called any number of times.
type mockUoW struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	history   *MockHistoryRepository
	medicines *MockMedicineRepository
	movements *MockStockMovementRepository
}

func newMockUoW() *mockUoW {
	m := &mockUoW{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		history:   new(MockHistoryRepository),
		medicines: new(MockMedicineRepository),
		movements: new(MockStockMovementRepository),
	}
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("HistoryRepository").Return(m.history).Maybe()
	m.uow.On("MedicineRepository").Return(m.medicines).Maybe()
	m.uow.On("StockMovementRepository").Return(m.movements).Maybe()
	return m
}

func (m *mockUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.history.AssertExpectations(t)
	m.medicines.AssertExpectations(t)
	m.movements.AssertExpectations(t)
}

// movementsMatch matches an Append call carrying exactly one movement of
// type typ per medicine, in order.
func movementsMatch(typ medicine.MovementType, reference string, medicines ...*medicine.Medicine) any {
	return mock.MatchedBy(func(movements []*medicine.StockMovement) bool {
		if len(movements) != len(medicines) {
			return false
		}
		for i, mv := range movements {
			if mv.Type() != typ || mv.Reference() != reference || !mv.MedicineID().IsEqual(medicines[i].ID()) {
				return false
			}
		}
		return true
	})
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

var fixedNow = time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "user-"+role.Code(), role)
	require.NoError(t, err)
	return a
}

func newMedicine(t *testing.T, name, price string, stock int) *medicine.Medicine {
	t.Helper()
	m, err := medicine.NewMedicine(kernel.NewUUID(), name, kernel.MustMoney(price), stock)
	require.NoError(t, err)
	return m
}

// restoreOrder builds an order in the given status with one item per medicine.
// Orders past Processing hold their stock; Shipped and Delivered ones have
// shipped.
func restoreOrder(t *testing.T, salesRep actor.Actor, status order.Status, medicines ...*medicine.Medicine) *order.Order {
	t.Helper()
	items := make([]*order.Item, 0, len(medicines))
	for _, m := range medicines {
		item, err := order.NewItem(kernel.NewUUID(), m.ID(), m.Name(), 2, m.UnitPrice())
		require.NoError(t, err)
		items = append(items, item)
	}
	customer, err := order.NewCustomer("Jane Doe", "", "")
	require.NoError(t, err)
	delivery, err := order.NewDelivery(order.Pickup, "")
	require.NoError(t, err)

	var shippedAt *time.Time
	if status == order.Shipped || status == order.Delivered {
		at := fixedNow.Add(-time.Hour)
		shippedAt = &at
	}

	o, err := order.RestoreOrder(order.State{
		ID:            kernel.NewUUID(),
		Number:        order.NewNumber(),
		SalesRepID:    salesRep.ID(),
		Customer:      customer,
		Delivery:      delivery,
		Items:         items,
		Status:        status,
		PaymentStatus: order.Unpaid,
		Totals:        order.DefaultPricing().Quote(items, order.Pickup),
		CreatedAt:     fixedNow.Add(-time.Hour),
		UpdatedAt:     fixedNow.Add(-time.Hour),
		ShippedAt:     shippedAt,
		StockReserved: status.HoldsStock(),
	})
	require.NoError(t, err)
	return o
}

func newTransitionService(t *testing.T) *services.StatusTransitionService {
	t.Helper()
	svc, err := services.NewStatusTransitionService(services.NewRoleAccessPolicy(), clock)
	require.NoError(t, err)
	return svc
}

func newPlacementService(t *testing.T) *services.OrderPlacementService {
	t.Helper()
	svc, err := services.NewOrderPlacementService(services.NewRoleAccessPolicy(), order.DefaultPricing(), clock)
	require.NoError(t, err)
	return svc
}
