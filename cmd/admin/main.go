package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/circuitbreaker"
	"github.com/piresc/fairpay/internal/pkg/config"
	"github.com/piresc/fairpay/internal/pkg/database"
	"github.com/piresc/fairpay/internal/pkg/health"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/middleware"
	natspkg "github.com/piresc/fairpay/internal/pkg/nats"
	nsqpkg "github.com/piresc/fairpay/internal/pkg/nsq"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/internal/pkg/retry"
	"github.com/piresc/fairpay/internal/pkg/server"
	"github.com/piresc/fairpay/services/admin"
	"github.com/piresc/fairpay/services/admin/gateway"
	"github.com/piresc/fairpay/services/admin/handler"
	httpHandler "github.com/piresc/fairpay/services/admin/handler/http"
	"github.com/piresc/fairpay/services/admin/handler/scheduler"
	"github.com/piresc/fairpay/services/admin/usecase"
)

func main() {
	appName := "admin-service"
	configs := config.InitConfig("config/admin.env")
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if configs.Admin.Email == "" || configs.Admin.PasswordHash == "" {
		logger.Warn("No admin account configured; console sign-in is disabled")
	}

	ctx := context.Background()
	startup := retry.New(retry.StartupConfig())
	shutdown := server.NewShutdownManager()
	healthService := health.NewHealthService()

	var postgresClient *database.PostgresClient
	if err := startup.Execute(ctx, "connect postgres", func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))

	var natsClient *natspkg.Client
	if err := startup.Execute(ctx, "connect nats", func(ctx context.Context) error {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		return err
	}); err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	remote := remotestore.NewPostgresStore(postgresClient.GetDB(), remotestore.NewNATSFeed(natsClient))
	if err := remote.Migrate(ctx); err != nil {
		logger.Fatal("Failed to migrate ledger schema", logger.Err(err))
	}

	// Decisions are announced over NSQ when the daemon is reachable
	var adminGW admin.AdminGW
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Error("NSQ unavailable, ledger events will not be published", logger.Err(err))
	} else {
		adminGW = gateway.NewAdminGW(producer, configs.NSQ.Topic,
			circuitbreaker.New(circuitbreaker.DefaultConfig("ledger-events")))
		shutdown.Register("nsq-producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	}

	adminUC, err := usecase.NewAdminUC(configs, remote, adminGW)
	if err != nil {
		logger.Fatal("Failed to create admin use case", logger.Err(err))
	}

	var sweeper *scheduler.SweepScheduler
	if configs.Admin.SweepEnabled {
		sweeper, err = scheduler.NewSweepScheduler(adminUC, configs.Admin.SweepSchedule)
		if err != nil {
			logger.Fatal("Failed to create sweep scheduler", logger.Err(err))
		}
		shutdown.Register("sweep-scheduler", sweeper.Stop)
	}

	h := handler.NewHandler(httpHandler.NewAdminHandler(adminUC), sweeper, configs)
	h.StartScheduler()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	h.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if err := server.NewGracefulServer(e, addr, shutdownTimeout).Start(); err != nil {
		logger.Error("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		logger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
