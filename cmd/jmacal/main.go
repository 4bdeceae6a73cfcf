package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jmacal/internal/api"
	"jmacal/internal/config"
	"jmacal/internal/jma"
	"jmacal/internal/scheduler"
	"jmacal/internal/services"
	"jmacal/internal/store"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting JMA Calendar Generator")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	cities := config.LoadCityMap(cfg.Output.CityMapFile)

	client := jma.NewClient(jma.ClientConfig{
		BaseURL:        cfg.JMA.BaseURL,
		Timeout:        cfg.JMA.Timeout,
		BreakerTimeout: cfg.JMA.BreakerTimeout,
	}, logger)

	fileStore := store.NewFileStore(cfg.Output.Dir, logger)
	generator := services.NewGenerator(cities, client, fileStore, logger)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe(cfg, generator, fileStore, logger)
		return
	}

	// Default: one-shot generation run
	generator.GenerateAll(context.Background())
}

func runServe(cfg *config.Config, generator *services.Generator, fileStore *store.FileStore, logger *zap.Logger) {
	// Populate the calendars before serving them
	generator.GenerateAll(context.Background())

	// Periodic refresh
	calendarScheduler := scheduler.NewScheduler(generator, cfg.Server.RefreshSchedule, logger)
	if err := calendarScheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(generator, fileStore, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting calendar feed server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	calendarScheduler.Stop()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
