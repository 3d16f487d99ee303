package http

import (
	"context"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
)

// Use case handlers the server depends on. The concrete command and query
// handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}

	AddMedicineHandler interface {
		Handle(ctx context.Context, cmd commands.AddMedicineCommand) error
	}

	RegisterActorHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterActorCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}

	OrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.GetOrderDetailsQueryResponse, error)
	}

	DashboardStatsHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (queries.DashboardStats, error)
	}

	ListMedicinesHandler interface {
		Handle(ctx context.Context, query queries.ListMedicinesQuery) ([]queries.MedicineView, error)
	}
)

// Handlers groups every use case the API exposes.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	CancelOrder       CancelOrderHandler
	AddMedicine       AddMedicineHandler
	RegisterActor     RegisterActorHandler
	ListOrders        ListOrdersHandler
	OrderDetails      OrderDetailsHandler
	DashboardStats    DashboardStatsHandler
	ListMedicines     ListMedicinesHandler
}
