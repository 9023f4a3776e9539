package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/handlers"
	"github.com/longkerdandy/burger-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	restaurantHandler *handlers.RestaurantHandler,
	reviewHandler *handlers.ReviewHandler,
	imageHandler *handlers.ImageHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", handlers.Health)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Users — reads are public, mutations are owner-or-admin
	api.Get("/users/:username", userHandler.Get)
	api.Put("/users/:username", middleware.JWTProtected(cfg), userHandler.Update)
	api.Delete("/users/:username", middleware.JWTProtected(cfg), userHandler.Delete)

	// Restaurants — reads are public except random, writes admin only.
	// Static paths are registered before /:id so they don't get
	// captured by it.
	api.Get("/restaurants/random", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.GetRandom)
	api.Get("/restaurants/search", restaurantHandler.Search)
	api.Get("/restaurants/:id", restaurantHandler.Get)
	api.Post("/restaurants", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.Create)
	api.Put("/restaurants/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.Update)
	api.Delete("/restaurants/purge", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.Purge)
	api.Delete("/restaurants/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.Delete)
	api.Post("/restaurants/:id/rating/recompute", middleware.JWTProtected(cfg), middleware.AdminRequired(), restaurantHandler.RecomputeRating)

	// Reviews — reads are public, writes need a logged-in user
	api.Get("/reviews", reviewHandler.Search)
	api.Get("/reviews/:id", reviewHandler.Get)
	api.Post("/reviews", middleware.JWTProtected(cfg), reviewHandler.Create)
	api.Put("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Update)
	api.Delete("/reviews/:id", middleware.JWTProtected(cfg), reviewHandler.Delete)
	api.Post("/reviews/:id/comments", middleware.JWTProtected(cfg), reviewHandler.AddComment)

	// Images — upload grants for authenticated users
	api.Get("/images/grant", middleware.JWTProtected(cfg), imageHandler.Grant)
}
