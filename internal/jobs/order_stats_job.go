package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StatsRecorder receives the figures the stats jobs compute.
type StatsRecorder interface {
	SetOrders(status string, count int)
	SetProducts(availability string, count int)
	SetRevenue(amount float64)
}

// OrderStatsJob publishes the number of orders per status and the completed
// revenue.
type OrderStatsJob struct {
	counts    queries.CountOrdersByStatusQueryHandler
	dashboard queries.GetDashboardSummaryQueryHandler
	recorder  StatsRecorder
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewOrderStatsJob(
	counts queries.CountOrdersByStatusQueryHandler,
	dashboard queries.GetDashboardSummaryQueryHandler,
	recorder StatsRecorder,
	logger *zap.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		counts:    counts,
		dashboard: dashboard,
		recorder:  recorder,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logFor(logger).With(zap.String("component", "order_stats_job")),
	}
}

// Run refreshes the order figures once.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	stats, err := j.counts.Stats(ctx)
	if err != nil {
		return err
	}
	for _, status := range order.Statuses() {
		j.recorder.SetOrders(status.String(), stats.ByStatus[status])
	}

	summary, err := j.dashboard.Handle(ctx)
	if err != nil {
		return err
	}
	j.recorder.SetRevenue(summary.Revenue.Amount())
	return nil
}

// Start runs the job on schedule, a cron spec with a seconds field.
func (j *OrderStatsJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.Error("Order stats job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order stats job started", zap.String("schedule", schedule))
	return nil
}

func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order stats job stopped")
}
