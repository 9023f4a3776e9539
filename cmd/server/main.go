package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/database"
	"github.com/longkerdandy/burger-backend/internal/handlers"
	"github.com/longkerdandy/burger-backend/internal/logging"
	"github.com/longkerdandy/burger-backend/internal/middleware"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"github.com/longkerdandy/burger-backend/internal/routes"
	"github.com/longkerdandy/burger-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx); err != nil {
		cancelIndex()
		slog.Error("index creation failed", "error", err)
		os.Exit(1)
	}
	cancelIndex()

	// MongoDB log handler (ERROR+ async batch)
	mongoLogHandler := logging.NewMongoHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		mongoLogHandler,
	)))

	// Services
	hasher := services.NewBcryptHasher()
	tokens := services.NewTokenService(cfg)
	images := services.NewImageService(cfg)
	publisher := services.NewCommentPublisher(cfg)

	// Repositories
	aggregator := repository.NewRatingAggregator(database.DB)
	users := repository.NewUserRepo(database.DB, hasher)
	restaurants := repository.NewRestaurantRepo(database.DB)
	reviews := repository.NewReviewRepo(database.DB, aggregator)

	// Handlers
	authHandler := handlers.NewAuthHandler(users, tokens, hasher)
	userHandler := handlers.NewUserHandler(users)
	restaurantHandler := handlers.NewRestaurantHandler(restaurants, aggregator)
	reviewHandler := handlers.NewReviewHandler(reviews, restaurants, users, publisher)
	imageHandler := handlers.NewImageHandler(images)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, authHandler, userHandler, restaurantHandler, reviewHandler, imageHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := publisher.Close(); err != nil {
		slog.Error("kafka writer close error", "error", err)
	}
	mongoLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDisconnect()
	if err := database.Disconnect(disconnectCtx); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
