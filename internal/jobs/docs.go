// Package jobs provides scheduled background tasks for the order intake service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// OrderStatusSnapshotJob counts stored orders per status and publishes the counts as the
// order_intake_orders_by_status gauge. Its schedule comes from configuration (STATS_SCHEDULE),
// "@every 30s" by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, appMetrics, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll(ctx)
//
// # Error Handling
//
// A failed run is logged and counted; the previous gauge values stay in place until the
// next successful run. A job that fails to start stops any jobs already running.
package jobs
