package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/streamline-live/streamline-backend/internal/config"
	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/handlers"
	"github.com/streamline-live/streamline-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	scheduleHandler *handlers.ScheduleHandler,
	adminScheduleHandler *handlers.AdminScheduleHandler,
	masterDataHandler *handlers.MasterDataHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: stricter rate limit, 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Host-facing schedule routes: token identity only, no DB re-check
	schedules := api.Group("/schedules", middleware.JWTProtected(cfg))
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/:id", scheduleHandler.Detail)
	schedules.Post("/:id/acknowledge", scheduleHandler.Acknowledge)

	// Admin routes: token plus current-role re-check against the DB
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Get("/schedules", adminScheduleHandler.List)
	admin.Get("/schedules/:id", adminScheduleHandler.Get)
	admin.Post("/schedules", adminScheduleHandler.Create)
	admin.Put("/schedules/:id", adminScheduleHandler.Update)
	admin.Delete("/schedules/:id", adminScheduleHandler.Delete)

	admin.Get("/users/hosts", masterDataHandler.Hosts)
	admin.Get("/products", masterDataHandler.Products)
	admin.Get("/vouchers", masterDataHandler.Vouchers)

	// 404 for anything unmatched, in the standard envelope
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Endpoint not found"))
	})
}
