package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultSchedule refreshes the stats every 30 seconds.
const DefaultSchedule = "*/30 * * * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	schedule        string
	orderStatsJob   *OrderStatsJob
	catalogStatsJob *CatalogStatsJob
}

// NewJobManager creates a job manager running both stats jobs on schedule.
// An empty schedule means DefaultSchedule.
func NewJobManager(schedule string, orderStats *OrderStatsJob, catalogStats *CatalogStatsJob) *JobManager {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &JobManager{
		schedule:        schedule,
		orderStatsJob:   orderStats,
		catalogStatsJob: catalogStats,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(jm.schedule); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	if err := jm.catalogStatsJob.Start(jm.schedule); err != nil {
		// Stop already started jobs if this one fails
		jm.orderStatsJob.Stop()
		return fmt.Errorf("failed to start catalog stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.catalogStatsJob.Stop()
	jm.orderStatsJob.Stop()
}

// logFor keeps nil loggers out of the jobs.
func logFor(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
