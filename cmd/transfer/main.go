package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greatadamu/ledgerlink/internal/pkg/config"
	"github.com/greatadamu/ledgerlink/internal/pkg/database"
	"github.com/greatadamu/ledgerlink/internal/pkg/health"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/middleware"
	"github.com/greatadamu/ledgerlink/internal/pkg/nats"
	"github.com/greatadamu/ledgerlink/services/transfer/gateway"
	"github.com/greatadamu/ledgerlink/services/transfer/handler"
	"github.com/greatadamu/ledgerlink/services/transfer/repository"
	"github.com/greatadamu/ledgerlink/services/transfer/usecase"
)

func main() {
	appName := "transfer-service"
	configPath := "config/transfer.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	cacheTTL := time.Duration(configs.Transfer.IdempotencyCacheTTL) * time.Second
	transferRepo := repository.NewTransferRepository(postgresClient.GetDB(), redisClient, cacheTTL)

	// Initialize gateways
	ledgerClient := gateway.NewLedgerHTTPClient(configs)
	transferGW := gateway.NewTransferGW(natsClient, zapLogger)

	// Initialize usecase
	transferUC := usecase.NewTransferUC(configs, transferRepo, ledgerClient, transferGW)

	// Initialize handler
	transferHandler := handler.NewTransferHandler(transferUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	transferHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	zapLogger.Info("Server exiting gracefully")
}
