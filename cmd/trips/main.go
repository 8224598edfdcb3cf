package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/config"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/health"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	natspkg "github.com/piresc/cabbooking/internal/pkg/nats"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/observability"
	"github.com/piresc/cabbooking/internal/pkg/retry"
	"github.com/piresc/cabbooking/internal/pkg/server"
	"github.com/piresc/cabbooking/services/trips/gateway"
	"github.com/piresc/cabbooking/services/trips/handler"
	httpHandler "github.com/piresc/cabbooking/services/trips/handler/http"
	"github.com/piresc/cabbooking/services/trips/handler/scheduler"
	"github.com/piresc/cabbooking/services/trips/repository"
	"github.com/piresc/cabbooking/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
		defer nrApp.Shutdown(10 * time.Second)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	ctx := context.Background()
	retrier := retry.NewWithDefaults(zapLogger)

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Execute(ctx, "postgres", func(context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Execute(ctx, "redis", func(context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	var natsClient *natspkg.Client
	err = retrier.Execute(ctx, "nats", func(context.Context) error {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName)
		return err
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repository
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	tripGW := gateway.NewTripGW(natsClient)

	// Initialize usecase
	tripUC := usecase.NewTripUC(configs, tripRepo, tripGW)

	// Handlers for HTTP
	tripHandler := httpHandler.NewTripHandler(tripUC)
	routes := handler.NewHandler(tripHandler, redisClient.GetClient(), configs)

	// Scheduled-trip promoter, one replica per tick
	sweeper := scheduler.NewSweeper(tripUC, redisClient, nrApp, configs.Trips)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(observability.EchoMiddleware())

	// Register health and metrics endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	observability.RegisterMetricsEndpoint(e)

	// Register service routes
	routes.RegisterRoutes(e)

	sweeper.Start(ctx)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(sweeper.Stop)
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		postgresClient.Close()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
