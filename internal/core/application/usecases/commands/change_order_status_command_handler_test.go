package commands_test

import (
	"context"

	"errors"
	"testing"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangeStatusHandler(
	t *testing.T,
	factory *MockUoWFactory,
	invalidator commands.StatsInvalidator,
) *commands.ChangeOrderStatusCommandHandler {
	t.Helper()
	h, err := commands.NewChangeOrderStatusCommandHandler(factory, newTransitionService(t), invalidator, nil)
	require.NoError(t, err)
	return h
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	paracetamol := newMedicine(t, "Paracetamol 500mg", "4.99", 10)
	ibuprofen := newMedicine(t, "Ibuprofen 200mg", "3.20", 5)
	o := restoreOrder(t, salesRep, order.Pending, paracetamol, ibuprofen)

	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "processing", "paid", "payment confirmed")
	require.NoError(t, err)

	m := newMockUoW()
	entryMatches := mock.MatchedBy(func(e *order.HistoryEntry) bool {
		return e.OrderID().IsEqual(o.ID()) &&
			e.OldStatus() == order.Pending &&
			e.NewStatus() == order.Processing &&
			e.OldPaymentStatus() == order.Unpaid &&
			e.NewPaymentStatus() == order.Paid &&
			e.Note() == "payment confirmed" &&
			e.ActorID().IsEqual(pharmacist.ID()) &&
			e.ChangedAt().Equal(fixedNow)
	})
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.medicines.On("GetMany", ctx, mock.AnythingOfType("[]kernel.UUID")).
			Return([]*medicine.Medicine{paracetamol, ibuprofen}, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, entryMatches).Return(nil).Once(),
		m.medicines.On("Update", ctx, paracetamol).Return(nil).Once(),
		m.medicines.On("Update", ctx, ibuprofen).Return(nil).Once(),
		m.movements.On("Append", ctx, movementsMatch(medicine.StockOut, o.Number(), paracetamol, ibuprofen)).
			Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()
	invalidator := new(MockStatsInvalidator)
	invalidator.On("Invalidate", ctx).Return(nil).Once()

	err = newChangeStatusHandler(t, factory, invalidator).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	factory.AssertExpectations(t)
	invalidator.AssertExpectations(t)
	assert.Equal(t, order.Processing, o.Status())
	assert.Equal(t, 8, paracetamol.CurrentStock())
	assert.Equal(t, 3, ibuprofen.CurrentStock())
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusIsRecorded(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	admin := newActor(t, actor.Admin)
	o := restoreOrder(t, salesRep, order.Processing, newMedicine(t, "Cetirizine", "6.00", 1))

	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), admin, "processing", "unpaid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.MatchedBy(func(e *order.HistoryEntry) bool {
			return e.OldStatus() == order.Processing && e.NewStatus() == order.Processing
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	m.medicines.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ShippedOrderBackToPendingKeepsStock(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	o := restoreOrder(t, salesRep, order.Shipped, newMedicine(t, "Cetirizine", "6.00", 1))
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "pending", "paid", "courier returned it")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	m.medicines.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything)
	m.movements.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.StockReserved())
	assert.Equal(t, order.StockUnchanged, o.StockEffectOf(order.Processing))
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidationFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	o := restoreOrder(t, salesRep, order.Processing, newMedicine(t, "Cetirizine", "6.00", 1))
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "ready_for_pickup", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()
	invalidator := new(MockStatsInvalidator)
	invalidator.On("Invalidate", ctx).Return(errors.New("redis down")).Once()
	logger, logs := newBufferLogger()

	h, err := commands.NewChangeOrderStatusCommandHandler(factory, newTransitionService(t), invalidator, logger)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	invalidator.AssertExpectations(t)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Failed to invalidate dashboard stats")
	assert.Contains(t, logs.String(), "redis down")
}

func TestChangeOrderStatusCommandHandler_Handle_RejectedBeforeStorage(t *testing.T) {
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)

	testCases := []struct {
		name    string
		actor   actor.Actor
		status  string
		payment string
		wantErr error
	}{
		{name: "sales rep", actor: salesRep, status: "processing", payment: "paid", wantErr: services.ErrUnauthorized},
		{name: "unauthorized wins over invalid status", actor: salesRep, status: "bogus", payment: "paid", wantErr: services.ErrUnauthorized},
		{name: "unknown status", actor: pharmacist, status: "returned", payment: "paid", wantErr: order.ErrInvalidStatus},
		{name: "unknown payment status", actor: pharmacist, status: "shipped", payment: "pending", wantErr: order.ErrInvalidStatus},
		{name: "empty status", actor: pharmacist, status: "", payment: "paid", wantErr: order.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), tc.actor, tc.status, tc.payment, "")
			require.NoError(t, err)
			factory := new(MockUoWFactory)

			err = newChangeStatusHandler(t, factory, nil).Handle(context.Background(), cmd)

			require.ErrorIs(t, err, tc.wantErr)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	pharmacist := newActor(t, actor.PharmacistAdmin)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, pharmacist, "shipped", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.assertExpectations(t)
	m.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	o := restoreOrder(t, salesRep, order.Delivered, newMedicine(t, "Cetirizine", "6.00", 1))
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "processing", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	m.assertExpectations(t)
	m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	assert.Equal(t, order.Delivered, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	scarce := newMedicine(t, "Insulin glargine", "45.00", 1)
	o := restoreOrder(t, salesRep, order.Pending, scarce)
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "processing", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.medicines.On("GetMany", ctx, mock.Anything).Return([]*medicine.Medicine{scarce}, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, medicine.ErrInsufficientStock)
	m.assertExpectations(t)
	m.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	assert.Equal(t, order.Pending, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_MovementAppendError(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	cetirizine := newMedicine(t, "Cetirizine", "6.00", 5)
	o := restoreOrder(t, salesRep, order.Pending, cetirizine)
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "processing", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.medicines.On("GetMany", ctx, mock.Anything).Return([]*medicine.Medicine{cetirizine}, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		m.medicines.On("Update", ctx, cetirizine).Return(nil).Once(),
		m.movements.On("Append", ctx, mock.Anything).Return(errors.New("ledger error")).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newChangeStatusHandler(t, factory, nil).Handle(ctx, cmd)

	require.ErrorContains(t, err, "ledger error")
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	o := restoreOrder(t, salesRep, order.Processing, newMedicine(t, "Cetirizine", "6.00", 1))
	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), pharmacist, "shipped", "paid", "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.Anything).Return(errors.New("append error")).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()
	invalidator := new(MockStatsInvalidator)

	err = newChangeStatusHandler(t, factory, invalidator).Handle(ctx, cmd)

	require.Error(t, err)
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	invalidator.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)

	err := newChangeStatusHandler(t, factory, nil).Handle(context.Background(), commands.ChangeOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	pharmacist := newActor(t, actor.PharmacistAdmin)

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), pharmacist, " shipped ", "paid", " left the depot ")
	require.NoError(t, err)
	assert.Equal(t, "shipped", cmd.StatusCode())
	assert.Equal(t, "left the depot", cmd.Note())

	_, err = commands.NewChangeOrderStatusCommand(kernel.UUID{}, actor.Actor{}, "shipped", "paid", "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}
