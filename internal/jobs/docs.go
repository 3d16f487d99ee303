// Package jobs provides scheduled background tasks for the order service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// DashboardStatsJob recomputes the all-orders dashboard figures and writes
// them to the cache, so staff dashboards rarely hit the database. The
// schedule comes from STATS_REFRESH_CRON and defaults to once a minute.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dashboardHandler, cfg.StatsRefreshCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick. Order writes
// invalidate the cached figures on their own.
package jobs
