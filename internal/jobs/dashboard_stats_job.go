package jobs

import (
	"context"
	"log/slog"
	"time"

	"medorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatsRefreshSchedule recomputes the dashboard figures every minute.
const DefaultStatsRefreshSchedule = "0 * * * * *"

const statsRefreshTimeout = 30 * time.Second

// StatsRefresher recomputes and caches the all-orders dashboard figures.
type StatsRefresher interface {
	Refresh(ctx context.Context) (queries.DashboardStats, error)
}

// DashboardStatsJob keeps the cached dashboard figures warm.
type DashboardStatsJob struct {
	refresher StatsRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDashboardStatsJob creates the job. schedule is a six field cron
// expression (seconds first); empty means DefaultStatsRefreshSchedule.
func NewDashboardStatsJob(refresher StatsRefresher, schedule string, logger *slog.Logger) *DashboardStatsJob {
	if schedule == "" {
		schedule = DefaultStatsRefreshSchedule
	}
	return &DashboardStatsJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dashboard_stats_job"),
	}
}

// Start registers the refresh and starts the scheduler.
func (j *DashboardStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard stats job started", "schedule", j.schedule)
	return nil
}

// Run performs a single refresh. Failures are logged; the next tick retries.
func (j *DashboardStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), statsRefreshTimeout)
	defer cancel()

	stats, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard stats refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Dashboard stats refreshed", "total_orders", stats.TotalOrders)
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DashboardStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard stats job stopped")
}
