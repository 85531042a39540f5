package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	"storefront/internal/jobs"
	"storefront/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       configs.LogLevel,
		Environment: configs.AppEnv,
		ServiceName: "storefront",
	}); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs); err != nil {
		logger.GetLogger().Error("Storefront stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config) error {
	l := logger.GetLogger()

	app, err := cmd.NewCompositionRoot(ctx, configs, l)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			l.Warn("Failed to close connections", zap.Error(closeErr))
		}
	}()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	consumer, err := app.NewIntakeConsumer()
	if err != nil {
		return err
	}
	if consumer != nil {
		go func() {
			if runErr := consumer.Run(ctx); runErr != nil {
				l.Error("Order intake stopped", zap.Error(runErr))
			}
		}()
	}

	return startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// The .env file is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		AppEnv:                 envOr("APP_ENV", "development"),
		LogLevel:               envOr("LOG_LEVEL", "info"),
		Storage:                envOr("STORAGE", cmd.StorageMemory),
		SeedFile:               seedFile(),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envOr("DB_NAME", "storefront"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		AMQPURL:                os.Getenv("AMQP_URL"),
		AMQPOrdersQueue:        envOr("AMQP_ORDERS_QUEUE", "orders.placed"),
		AMQPNotificationsQueue: envOr("AMQP_NOTIFICATIONS_QUEUE", "storefront.notifications"),
		StatsSchedule:          envOr("STATS_SCHEDULE", jobs.DefaultSchedule),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// seedFile defaults to the sample data; SEED_FILE set to "" disables seeding.
func seedFile() string {
	if v, ok := os.LookupEnv("SEED_FILE"); ok {
		return v
	}
	return "configs/seed.yaml"
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e, err := app.NewRouter()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.GetLogger().Info("HTTP server listening", zap.String("port", port))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- startErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
