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
	"github.com/greatadamu/ledgerlink/services/ledger/gateway"
	"github.com/greatadamu/ledgerlink/services/ledger/handler"
	"github.com/greatadamu/ledgerlink/services/ledger/repository"
	"github.com/greatadamu/ledgerlink/services/ledger/usecase"
)

func main() {
	appName := "ledger-service"
	configPath := "config/ledger.env"
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

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	ledgerRepo := repository.NewLedgerRepository(postgresClient.GetDB())

	// Initialize gateway
	ledgerGW := gateway.NewLedgerGW(natsClient)

	// Initialize usecase
	ledgerUC := usecase.NewLedgerUC(configs, ledgerRepo, ledgerGW)

	// Initialize handler
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	ledgerHandler.RegisterRoutes(e, apiKeyMiddleware)

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

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	zapLogger.Info("Server exiting gracefully")
}
