package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "medorders/internal/adapters/in/http"
	"medorders/internal/adapters/out/postgres"
	"medorders/internal/adapters/out/postgres/actorrepo"
	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"
	"medorders/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot builds the use case handlers and the adapters around them.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	actors     *actorrepo.GormActorRepository
	policy     services.AccessPolicy
	dashboard  *queries.GetDashboardStatsQueryHandler
}

// NewCompositionRoot wires the shared dependencies. cache backs the
// dashboard figures.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, cache ports.Cache, logger *slog.Logger) (*CompositionRoot, error) {
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return nil, err
	}

	policy := services.NewRoleAccessPolicy()
	dashboard, err := queries.NewGetDashboardStatsQueryHandler(gormDB, cache, ttl, policy, nil)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		actors:     actorrepo.NewGormActorRepository(gormDB, 0),
		policy:     policy,
		dashboard:  dashboard,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (*commands.CreateOrderCommandHandler, error) {
	pricing, err := c.cfg.Pricing()
	if err != nil {
		return nil, err
	}
	placement, err := services.NewOrderPlacementService(c.policy, pricing, nil)
	if err != nil {
		return nil, err
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, placement, c.dashboard, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() (*commands.ChangeOrderStatusCommandHandler, error) {
	transitions, err := services.NewStatusTransitionService(c.policy, nil)
	if err != nil {
		return nil, err
	}

	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, transitions, c.dashboard, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() (*commands.CancelOrderCommandHandler, error) {
	transitions, err := services.NewStatusTransitionService(c.policy, nil)
	if err != nil {
		return nil, err
	}

	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, transitions, c.policy, c.dashboard, c.logger)
}

func (c *CompositionRoot) CreateAddMedicineCommandHandler() (*commands.AddMedicineCommandHandler, error) {
	var f commands.MedicineUoWFactory = FuncMedicineUoWFactory(func() commands.MedicineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMedicineCommandHandler(f, c.policy, c.dashboard, c.logger)
}

func (c *CompositionRoot) CreateRegisterActorCommandHandler() (*commands.RegisterActorCommandHandler, error) {
	return commands.NewRegisterActorCommandHandler(c.actors, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() (*queries.ListOrdersQueryHandler, error) {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() (*queries.GetOrderDetailsQueryHandler, error) {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListMedicinesQueryHandler() (*queries.ListMedicinesQueryHandler, error) {
	return queries.NewListMedicinesQueryHandler(c.gormDB, c.policy)
}

// CreateRouter assembles the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	createOrder, err := c.CreateCreateOrderCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("create order handler: %w", err)
	}
	changeStatus, err := c.CreateChangeOrderStatusCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("change order status handler: %w", err)
	}
	cancelOrder, err := c.CreateCancelOrderCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("cancel order handler: %w", err)
	}
	addMedicine, err := c.CreateAddMedicineCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("add medicine handler: %w", err)
	}
	registerActor, err := c.CreateRegisterActorCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("register actor handler: %w", err)
	}
	listOrders, err := c.CreateListOrdersQueryHandler()
	if err != nil {
		return nil, fmt.Errorf("list orders handler: %w", err)
	}
	orderDetails, err := c.CreateGetOrderDetailsQueryHandler()
	if err != nil {
		return nil, fmt.Errorf("order details handler: %w", err)
	}
	listMedicines, err := c.CreateListMedicinesQueryHandler()
	if err != nil {
		return nil, fmt.Errorf("list medicines handler: %w", err)
	}

	server, err := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       createOrder,
		ChangeOrderStatus: changeStatus,
		CancelOrder:       cancelOrder,
		AddMedicine:       addMedicine,
		RegisterActor:     registerActor,
		ListOrders:        listOrders,
		OrderDetails:      orderDetails,
		DashboardStats:    c.dashboard,
		ListMedicines:     listMedicines,
	}, c.policy, c.logger)
	if err != nil {
		return nil, err
	}

	return httpadapter.NewRouter(server, c.actors, c.logger)
}

// CreateJobManager schedules the dashboard refresh.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dashboard, c.cfg.StatsRefreshCron, c.logger)
}

// BootstrapAdmin registers the ADMIN_USERNAME account when it does not exist
// yet, so a fresh database has someone who can register other users.
func (c *CompositionRoot) BootstrapAdmin(ctx context.Context) error {
	if c.cfg.AdminUsername == "" {
		return nil
	}

	admin, err := actor.NewActor(kernel.NewUUID(), c.cfg.AdminUsername, actor.Admin)
	if err != nil {
		return err
	}
	if len(c.cfg.AdminPassword) < commands.MinPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", commands.MinPasswordLength)
	}

	err = c.actors.Register(ctx, admin, c.cfg.AdminPassword)
	switch {
	case errors.Is(err, ports.ErrUsernameTaken):
		return nil
	case err != nil:
		return err
	}

	c.logger.InfoContext(ctx, "Admin account created", "username", admin.Username())
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMedicineUoWFactory func() commands.MedicineUoW

func (f FuncMedicineUoWFactory) Create() commands.MedicineUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
