package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/config"
	"github.com/piresc/fairpay/internal/pkg/database"
	"github.com/piresc/fairpay/internal/pkg/health"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/middleware"
	natspkg "github.com/piresc/fairpay/internal/pkg/nats"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/internal/pkg/retry"
	"github.com/piresc/fairpay/internal/pkg/server"
	"github.com/piresc/fairpay/services/wallet"
	"github.com/piresc/fairpay/services/wallet/handler"
	httpHandler "github.com/piresc/fairpay/services/wallet/handler/http"
	nsqHandler "github.com/piresc/fairpay/services/wallet/handler/nsq"
	"github.com/piresc/fairpay/services/wallet/repository"
	"github.com/piresc/fairpay/services/wallet/usecase"
)

func main() {
	appName := "wallet-service"
	configs := config.InitConfig("config/wallet.env")
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

	ctx := context.Background()
	startup := retry.New(retry.StartupConfig())
	shutdown := server.NewShutdownManager()
	healthService := health.NewHealthService()

	// Remote ledger: PostgreSQL with NATS change notices
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

	// Local ledger: Redis unless configured for in-process memory
	var (
		local       wallet.LocalStore
		redisClient *redis.Client
	)
	switch configs.Wallet.LocalStoreBackend {
	case "memory":
		local = repository.NewMemoryLocalStore()
		logger.Warn("Using in-memory local ledger; cached wallets are lost on restart")
	default:
		var rc *database.RedisClient
		if err := startup.Execute(ctx, "connect redis", func(ctx context.Context) error {
			rc, err = database.NewRedisClient(configs.Redis)
			return err
		}); err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return rc.Close() })
		healthService.AddChecker("redis", health.NewRedisHealthChecker(rc))
		local = repository.NewRedisLocalStore(rc)
		redisClient = rc.GetClient()
	}

	walletUC, err := usecase.NewWalletUC(configs, local, remote)
	if err != nil {
		logger.Fatal("Failed to create wallet use case", logger.Err(err))
	}
	shutdown.Register("wallet", func(context.Context) error { return walletUC.Close() })

	h := handler.NewHandler(
		httpHandler.NewWalletHandler(walletUC),
		nsqHandler.NewLedgerEventHandler(walletUC),
		redisClient,
		configs,
	)

	// Admin decisions arrive over NSQ; live watches still cover a missing consumer
	if err := h.InitNSQConsumers(); err != nil {
		logger.Error("Failed to initialize NSQ consumers", logger.Err(err))
	} else {
		shutdown.Register("nsq-consumer", func(context.Context) error {
			h.StopNSQConsumers()
			return nil
		})
	}

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
