package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrined/proProjectWineStore/internal/config"
	"github.com/dmitrined/proProjectWineStore/internal/connect"
	"github.com/dmitrined/proProjectWineStore/internal/container"
	"github.com/dmitrined/proProjectWineStore/internal/models"
	"github.com/dmitrined/proProjectWineStore/internal/routes"
	"github.com/dmitrined/proProjectWineStore/internal/seed"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting Winestore API server", "environment", cfg.Environment)

	cld, err := connect.CloudinaryCredentials()
	if err != nil {
		logger.Warn("Cloudinary unavailable, image uploads disabled", "error", err)
		cld = nil
	}
	connect.Cld = cld

	mongoClient, err := connect.MongoDBConnect()
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to MongoDB successfully")

	redisClient, err := connect.RedisConnect(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("Redis unavailable, catalog cache disabled", "error", err)
		redisClient = nil
	}

	// Indexes and first-boot seed data
	repo := models.MongodbNewRepo(mongoClient)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 60*time.Second)
	if err := repo.EnsureIndexes(startupCtx); err != nil {
		logger.Error("Failed to create indexes", "error", err)
		cancelStartup()
		os.Exit(1)
	}
	seeder := seed.NewSeeder(repo, repo, logger)
	if err := seeder.Run(startupCtx, cfg.WinesSeedPath, cfg.EventsSeedPath); err != nil {
		logger.Error("Failed to seed initial data", "error", err)
	}
	cancelStartup()

	// Initialize dependency container
	appContainer := container.NewContainer(logger, cld, mongoClient, redisClient)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Close database connections
	if err := connect.RedisDisconnect(); err != nil {
		logger.Error("Error disconnecting from Redis", "error", err)
	}
	if err := connect.MongoDBDisconnect(); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
