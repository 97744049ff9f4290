package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-ledger/internal/config"
	"voice-ledger/internal/database"
	"voice-ledger/internal/handlers"
	"voice-ledger/internal/middleware"
	"voice-ledger/internal/repositories"
	"voice-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	snapshotRepo := repositories.NewSnapshotRepository(db)

	metrics := services.NewPrometheusMetrics()
	ledger := services.NewLedgerService(snapshotRepo, metrics)
	registry := services.NewRegistryService(snapshotRepo, ledger, metrics)
	stats := services.NewStatsService(ledger, registry, metrics)
	export := services.NewExportService(ledger, metrics)

	device := services.NewSimulatedCaptureDevice()
	sink := services.NewDiskRecordingSink(cfg.Recordings.Dir, cfg.Recordings.MaxArtifactMiB)
	recording := services.NewRecordingService(device, sink, metrics)

	expenseHandler := handlers.NewExpenseHandler(ledger, export)
	categoryHandler := handlers.NewCategoryHandler(registry)
	statsHandler := handlers.NewStatsHandler(stats)
	recordingHandler := handlers.NewRecordingHandler(recording, sink)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/expenses", expenseHandler.CreateExpense)
	api.GET("/expenses", expenseHandler.ListExpenses)
	api.DELETE("/expenses", expenseHandler.ClearExpenses)
	api.GET("/expenses/export", expenseHandler.ExportExpenses)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/stats/summary", statsHandler.GetSummary)

	api.POST("/recordings", recordingHandler.UploadRecording)
	api.POST("/recordings/session/start", recordingHandler.StartSession)
	api.POST("/recordings/session/stop", recordingHandler.StopSession)
	api.GET("/recordings/session", recordingHandler.SessionStatus)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server",
			"address", address,
			"environment", cfg.Server.Environment,
		)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err.Error())
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
