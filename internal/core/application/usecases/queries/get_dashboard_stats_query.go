package queries

import (
	"errors"
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/pkg/guard"
)

// LowStockThreshold is the stock level below which an active medicine is
// counted as running low.
const LowStockThreshold = 10

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery asks for the order figures shown on the dashboard.
// Staff see figures for every order; sales representatives for their own.
type GetDashboardStatsQuery struct {
	requester actor.Actor
	guard     guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(requester actor.Actor) (GetDashboardStatsQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats holds order counts. ByStatus lists every status in
// lifecycle order, including those with no orders. LowStockMedicines is
// only filled for staff.
type DashboardStats struct {
	TotalOrders       int64         `json:"total_orders"`
	TodayOrders       int64         `json:"today_orders"`
	WeekOrders        int64         `json:"week_orders"`
	UnpaidOrders      int64         `json:"unpaid_orders"`
	ByStatus          []StatusCount `json:"by_status"`
	LowStockMedicines int64         `json:"low_stock_medicines"`
	GeneratedAt       time.Time     `json:"generated_at"`
}
