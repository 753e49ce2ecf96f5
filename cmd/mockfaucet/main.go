package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Giri-Aayush/concero-faucet/internal/api"
	"github.com/Giri-Aayush/concero-faucet/internal/cache"
	"github.com/Giri-Aayush/concero-faucet/internal/config"
	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting mock Concero faucet",
		zap.String("port", cfg.Port),
		zap.Int("cooldown_hours", cfg.CooldownHours),
		zap.Duration("response_delay", cfg.ResponseDelay),
	)

	// Cooldown store
	var store cache.CooldownStore
	if cfg.RedisURL != "" {
		logger.Info("Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}
	defer store.Close()
	logger.Info("Cooldown store ready", zap.String("store", store.Name()))

	handler := api.NewHandler(cfg, logger, store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "Mock Concero Faucet",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	api.SetupRoutes(app, handler)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("Server starting", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
