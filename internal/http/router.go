package http

import (
	"time"

	"github.com/escrow-desk/backend/internal/config"
	"github.com/escrow-desk/backend/internal/http/handlers"
	"github.com/escrow-desk/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	dealHandler *handlers.DealHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Public
	api.Post("/accounts", accountHandler.Register)
	api.Post("/auth/token", authHandler.Token)

	// Protected
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	protected.Get("/me", accountHandler.GetMe)

	// Deals. Route order matters: /deals/count before /deals/:id.
	protected.Post("/deals", dealHandler.CreateDeal)
	protected.Get("/deals/count", dealHandler.DealCount)
	protected.Get("/deals/:id", dealHandler.GetDeal)
	protected.Post("/deals/:id/confirm", dealHandler.ConfirmDeal)
	protected.Post("/deals/:id/release", dealHandler.ReleaseFunds)
	protected.Post("/deals/:id/refund", dealHandler.RefundDeal)
	protected.Get("/deals/:id/events", dealHandler.GetDealEvents)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
