package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/intake"
	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/notifier"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/seed"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "storefront"

type CompositionRoot struct {
	config     Config
	logger     *zap.Logger
	uowFactory ports.UnitOfWorkFactory
	readers    ports.Readers
	notifier   ports.Notifier
	metrics    *metrics.Metrics
	amqpConn   *amqp.Connection
	closers    []func() error
}

// NewCompositionRoot opens the configured storage, seeds an empty store and
// connects to the broker when AMQP_URL is set.
func NewCompositionRoot(ctx context.Context, config Config, log *zap.Logger) (*CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:  config,
		logger:  log,
		metrics: metrics.New(serviceName),
	}

	if err := c.openStorage(); err != nil {
		return nil, err
	}
	if err := c.seed(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.connectBroker(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) openStorage() error {
	if c.config.Storage == StorageMemory {
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.readers = store
		return nil
	}

	gormDB, err := gorm.Open(postgresdriver.Open(c.config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres.Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	c.readers = postgres.NewReaders(gormDB)
	return nil
}

// seed loads SEED_FILE into a store that holds neither orders nor products.
func (c *CompositionRoot) seed(ctx context.Context) error {
	if c.config.SeedFile == "" {
		return nil
	}

	orders, err := c.readers.Orders().GetAll(ctx)
	if err != nil {
		return err
	}
	products, err := c.readers.Products().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(orders) > 0 || len(products) > 0 {
		c.logger.Info("Store already holds data, seed skipped", zap.String("seed_file", c.config.SeedFile))
		return nil
	}

	f, err := seed.LoadFile(c.config.SeedFile)
	if err != nil {
		return err
	}
	if err = f.Apply(ctx, c.uowFactory.Create()); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	c.logger.Info("Store seeded",
		zap.String("seed_file", c.config.SeedFile),
		zap.Int("orders", len(f.Orders)),
		zap.Int("products", len(f.Products)),
	)
	return nil
}

func (c *CompositionRoot) connectBroker() error {
	fanout := notifier.Fanout{notifier.NewLogNotifier(c.logger)}
	c.notifier = fanout

	if c.config.AMQPURL == "" {
		return nil
	}

	conn, err := amqp.Dial(c.config.AMQPURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ at %s: %w", c.config.RedactedAMQPURL(), err)
	}
	c.amqpConn = conn
	c.closers = append(c.closers, conn.Close)

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel: %w", err)
	}
	published, err := notifier.NewAMQPNotifier(ch, c.config.AMQPNotificationsQueue)
	if err != nil {
		return err
	}

	c.notifier = append(fanout, published)
	return nil
}

// Close releases the database and broker connections.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReceiveOrderCommandHandler() commands.ReceiveOrderCommandHandler {
	return commands.NewReceiveOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSaveSellerProfileCommandHandler() commands.SaveSellerProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveSellerProfileCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.readers.Orders())
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.readers.Orders())
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.readers.Orders(), c.readers.Products())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.readers.Products())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.readers.Products())
}

func (c *CompositionRoot) CreateGetSellerProfileQueryHandler() queries.GetSellerProfileQueryHandler {
	return queries.NewGetSellerProfileQueryHandler(c.readers.Profiles())
}

// NewRouter wires every use case behind the HTTP API.
func (c *CompositionRoot) NewRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		httpin.CommandHandlers{
			ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
			ReceiveOrder:      c.CreateReceiveOrderCommandHandler(),
			CreateProduct:     c.CreateCreateProductCommandHandler(),
			UpdateProduct:     c.CreateUpdateProductCommandHandler(),
			DeleteProduct:     c.CreateDeleteProductCommandHandler(),
			SaveProfile:       c.CreateSaveSellerProfileCommandHandler(),
		},
		httpin.QueryHandlers{
			Orders:         c.CreateGetOrdersQueryHandler(),
			CountOrders:    c.CreateCountOrdersByStatusQueryHandler(),
			Dashboard:      c.CreateGetDashboardSummaryQueryHandler(),
			PriceBreakdown: queries.NewGetPriceBreakdownQueryHandler(),
			Products:       c.CreateGetProductsQueryHandler(),
			Product:        c.CreateGetProductQueryHandler(),
			Profile:        c.CreateGetSellerProfileQueryHandler(),
		},
	)
	return httpin.NewRouter(server, c.metrics)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.config.StatsSchedule,
		jobs.NewOrderStatsJob(
			c.CreateCountOrdersByStatusQueryHandler(),
			c.CreateGetDashboardSummaryQueryHandler(),
			c.metrics,
			c.logger,
		),
		jobs.NewCatalogStatsJob(c.CreateGetProductsQueryHandler(), c.metrics, c.logger),
	)
}

// NewIntakeConsumer returns nil when no broker is configured.
func (c *CompositionRoot) NewIntakeConsumer() (*intake.Consumer, error) {
	if c.amqpConn == nil {
		return nil, nil
	}

	ch, err := c.amqpConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	handler := c.CreateReceiveOrderCommandHandler()
	return intake.NewConsumer(ch, c.config.AMQPOrdersQueue, &handler, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
