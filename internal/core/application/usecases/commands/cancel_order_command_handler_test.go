package commands_test

import (
	"context"

	"testing"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCancelHandler(t *testing.T, factory *MockUoWFactory) *commands.CancelOrderCommandHandler {
	t.Helper()
	h, err := commands.NewCancelOrderCommandHandler(factory, newTransitionService(t), services.NewRoleAccessPolicy(), nil, nil)
	require.NoError(t, err)
	return h
}

func TestCancelOrderCommandHandler_Handle_OwnerCancelsPending(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	o := restoreOrder(t, salesRep, order.Pending, newMedicine(t, "Loratadine", "5.40", 4))
	cmd, err := commands.NewCancelOrderCommand(o.ID(), salesRep, "duplicate order")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.MatchedBy(func(e *order.HistoryEntry) bool {
			return e.NewStatus() == order.Cancelled && e.Note() == "duplicate order"
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newCancelHandler(t, factory).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestCancelOrderCommandHandler_Handle_StaffCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	salesRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)
	loratadine := newMedicine(t, "Loratadine", "5.40", 4)
	o := restoreOrder(t, salesRep, order.ReadyForPickup, loratadine)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), pharmacist, "")
	require.NoError(t, err)

	m := newMockUoW()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.medicines.On("GetMany", ctx, mock.Anything).Return([]*medicine.Medicine{loratadine}, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		m.medicines.On("Update", ctx, loratadine).Return(nil).Once(),
		m.movements.On("Append", ctx, movementsMatch(medicine.StockReturn, o.Number()+"-CANCEL", loratadine)).
			Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(m.uow).Once()

	err = newCancelHandler(t, factory).Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	assert.Equal(t, 6, loratadine.CurrentStock())
}

func TestCancelOrderCommandHandler_Handle_Refused(t *testing.T) {
	owner := newActor(t, actor.SalesRep)
	otherRep := newActor(t, actor.SalesRep)
	pharmacist := newActor(t, actor.PharmacistAdmin)

	testCases := []struct {
		name    string
		actor   actor.Actor
		status  order.Status
		wantErr error
	}{
		{name: "other sales rep sees not found", actor: otherRep, status: order.Pending, wantErr: errs.ErrObjectNotFound},
		{name: "owner after fulfilment started", actor: owner, status: order.Processing, wantErr: services.ErrUnauthorized},
		{name: "delivered order", actor: pharmacist, status: order.Delivered, wantErr: order.ErrIllegalTransition},
		{name: "already cancelled", actor: pharmacist, status: order.Cancelled, wantErr: order.ErrIllegalTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			o := restoreOrder(t, owner, tc.status, newMedicine(t, "Loratadine", "5.40", 4))
			cmd, err := commands.NewCancelOrderCommand(o.ID(), tc.actor, "")
			require.NoError(t, err)

			m := newMockUoW()
			mock.InOrder(
				m.uow.On("Begin", ctx).Return(nil).Once(),
				m.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				m.uow.On("Rollback", ctx).Return(nil).Once(),
			)
			m.medicines.On("GetMany", ctx, mock.Anything).Return([]*medicine.Medicine{}, nil).Maybe()
			factory := new(MockUoWFactory)
			factory.On("Create").Return(m.uow).Once()

			err = newCancelHandler(t, factory).Handle(ctx, cmd)

			require.ErrorIs(t, err, tc.wantErr)
			m.assertExpectations(t)
			m.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
			assert.Equal(t, tc.status, o.Status())
		})
	}
}
