package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/product"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CatalogStatsJob publishes the number of products per availability.
type CatalogStatsJob struct {
	products queries.GetProductsQueryHandler
	recorder StatsRecorder
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewCatalogStatsJob(products queries.GetProductsQueryHandler, recorder StatsRecorder, logger *zap.Logger) *CatalogStatsJob {
	return &CatalogStatsJob{
		products: products,
		recorder: recorder,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logFor(logger).With(zap.String("component", "catalog_stats_job")),
	}
}

// Run refreshes the catalog figures once.
func (j *CatalogStatsJob) Run(ctx context.Context) error {
	products, err := j.products.Handle(ctx)
	if err != nil {
		return err
	}

	counts := make(map[product.Availability]int, len(product.Availabilities()))
	for _, p := range products {
		counts[p.Availability()]++
	}
	for _, availability := range product.Availabilities() {
		j.recorder.SetProducts(availability.String(), counts[availability])
	}
	return nil
}

func (j *CatalogStatsJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("Catalog stats job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Catalog stats job started", zap.String("schedule", schedule))
	return nil
}

func (j *CatalogStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Catalog stats job stopped")
}
