package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dashboardStatsJob *DashboardStatsJob
}

// NewJobManager creates the job manager. statsSchedule is passed to
// NewDashboardStatsJob.
func NewJobManager(refresher StatsRefresher, statsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		dashboardStatsJob: NewDashboardStatsJob(refresher, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardStatsJob.Stop()
}
