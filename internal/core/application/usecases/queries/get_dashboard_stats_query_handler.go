package queries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DashboardStatsCacheKey holds the figures across all orders. Per sales rep
// figures are computed on every request and never cached.
const DashboardStatsCacheKey = "dashboard:stats:all"

// DefaultStatsCacheTTL bounds how stale cached figures may get when no
// write invalidates them.
const DefaultStatsCacheTTL = 5 * time.Minute

// GetDashboardStatsQueryHandler serves dashboard figures. The all-orders
// figures go through the cache; Refresh recomputes them on a schedule and
// Invalidate drops them after a write.
type GetDashboardStatsQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	policy services.AccessPolicy
	now    func() time.Time
}

// NewGetDashboardStatsQueryHandler builds the handler. A zero ttl means
// DefaultStatsCacheTTL; a nil now means time.Now in UTC.
func NewGetDashboardStatsQueryHandler(
	db *gorm.DB,
	cache ports.Cache,
	ttl time.Duration,
	policy services.AccessPolicy,
	now func() time.Time,
) (*GetDashboardStatsQueryHandler, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if cache == nil {
		return nil, errors.New("cache is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	if ttl <= 0 {
		ttl = DefaultStatsCacheTTL
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &GetDashboardStatsQueryHandler{db: db, cache: cache, ttl: ttl, policy: policy, now: now}, nil
}

// Handle returns cached figures for staff when present. Cache failures fall
// back to the database.
func (h *GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return DashboardStats{}, err
	}

	if !h.policy.CanViewAllOrders(query.requester) {
		salesRepID := query.requester.ID()
		return h.compute(ctx, &salesRepID)
	}

	if raw, err := h.cache.Get(ctx, DashboardStatsCacheKey); err == nil {
		var stats DashboardStats
		if json.Unmarshal(raw, &stats) == nil {
			return stats, nil
		}
	}

	stats, err := h.compute(ctx, nil)
	if err != nil {
		return DashboardStats{}, err
	}
	// Cache write failures are not reported; the next request recomputes.
	_ = h.store(ctx, stats)
	return stats, nil
}

// Refresh recomputes the all-orders figures and stores them in the cache.
func (h *GetDashboardStatsQueryHandler) Refresh(ctx context.Context) (DashboardStats, error) {
	stats, err := h.compute(ctx, nil)
	if err != nil {
		return DashboardStats{}, err
	}
	if err = h.store(ctx, stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

func (h *GetDashboardStatsQueryHandler) store(ctx context.Context, stats DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return h.cache.Set(ctx, DashboardStatsCacheKey, raw, h.ttl)
}

// Invalidate drops the cached all-orders figures.
func (h *GetDashboardStatsQueryHandler) Invalidate(ctx context.Context) error {
	return h.cache.Delete(ctx, DashboardStatsCacheKey)
}

type statusCountRow struct {
	Status string
	Count  int64
}

type orderTotalsRow struct {
	Total  int64
	Today  int64
	Week   int64
	Unpaid int64
}

func (h *GetDashboardStatsQueryHandler) compute(ctx context.Context, salesRepID *kernel.UUID) (DashboardStats, error) {
	now := h.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := startOfDay.AddDate(0, 0, -7)

	scoped := func() *gorm.DB {
		db := h.db.WithContext(ctx).Table("orders")
		if salesRepID != nil {
			db = db.Where("sales_rep_id = ?", salesRepID.Bytes())
		}
		return db
	}

	var totals orderTotalsRow
	err := scoped().
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE created_at >= ?) AS today,
			COUNT(*) FILTER (WHERE created_at >= ?) AS week,
			COUNT(*) FILTER (WHERE payment_status = ?) AS unpaid`,
			startOfDay, weekAgo, order.Unpaid.Code()).
		Scan(&totals).Error
	if err != nil {
		return DashboardStats{}, err
	}

	var rows []statusCountRow
	err = scoped().
		Select("status, COUNT(*) AS count").
		Where("status = ANY(?)", pq.Array(order.StatusCodes())).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return DashboardStats{}, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	byStatus := make([]StatusCount, 0, len(order.Statuses()))
	for _, code := range order.StatusCodes() {
		byStatus = append(byStatus, StatusCount{Status: code, Count: counts[code]})
	}

	stats := DashboardStats{
		TotalOrders:  totals.Total,
		TodayOrders:  totals.Today,
		WeekOrders:   totals.Week,
		UnpaidOrders: totals.Unpaid,
		ByStatus:     byStatus,
		GeneratedAt:  now,
	}

	if salesRepID == nil {
		err = h.db.WithContext(ctx).
			Table("medicines").
			Where("is_active AND current_stock < ?", LowStockThreshold).
			Count(&stats.LowStockMedicines).Error
		if err != nil {
			return DashboardStats{}, err
		}
	}

	return stats, nil
}
