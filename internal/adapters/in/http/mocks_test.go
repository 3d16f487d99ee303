package http_test

import (
	"context"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/core/domain/model/actor"

	"github.com/stretchr/testify/mock"
)

type MockAuthenticator struct{ mock.Mock }

func (m *MockAuthenticator) Authenticate(ctx context.Context, username, password string) (actor.Actor, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(actor.Actor), args.Error(1)
}

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockQueryHandler[Q, R any] struct{ mock.Mock }

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(R), args.Error(1)
}

type mockHandlers struct {
	createOrder       *MockCommandHandler[commands.CreateOrderCommand]
	changeOrderStatus *MockCommandHandler[commands.ChangeOrderStatusCommand]
	cancelOrder       *MockCommandHandler[commands.CancelOrderCommand]
	addMedicine       *MockCommandHandler[commands.AddMedicineCommand]
	registerActor     *MockCommandHandler[commands.RegisterActorCommand]
	listOrders        *MockQueryHandler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
	orderDetails      *MockQueryHandler[queries.GetOrderDetailsQuery, queries.GetOrderDetailsQueryResponse]
	dashboardStats    *MockQueryHandler[queries.GetDashboardStatsQuery, queries.DashboardStats]
	listMedicines     *MockQueryHandler[queries.ListMedicinesQuery, []queries.MedicineView]
}

func newMockHandlers() *mockHandlers {
	return &mockHandlers{
		createOrder:       new(MockCommandHandler[commands.CreateOrderCommand]),
		changeOrderStatus: new(MockCommandHandler[commands.ChangeOrderStatusCommand]),
		cancelOrder:       new(MockCommandHandler[commands.CancelOrderCommand]),
		addMedicine:       new(MockCommandHandler[commands.AddMedicineCommand]),
		registerActor:     new(MockCommandHandler[commands.RegisterActorCommand]),
		listOrders:        new(MockQueryHandler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]),
		orderDetails:      new(MockQueryHandler[queries.GetOrderDetailsQuery, queries.GetOrderDetailsQueryResponse]),
		dashboardStats:    new(MockQueryHandler[queries.GetDashboardStatsQuery, queries.DashboardStats]),
		listMedicines:     new(MockQueryHandler[queries.ListMedicinesQuery, []queries.MedicineView]),
	}
}
