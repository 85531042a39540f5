// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// that keep the Prometheus gauges of internal/pkg/metrics up to date.
//
// # Available Jobs
//
// 1. OrderStatsJob - Publishes the number of orders per status and the completed revenue
// 2. CatalogStatsJob - Publishes the number of products per availability
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(schedule, orderStatsJob, catalogStatsJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The default
// "*/30 * * * * *" runs both jobs every 30 seconds.
//
// # Error Handling
//
// A failed run is logged and the next run starts from scratch. A job that
// fails to start stops the jobs already running.
package jobs
