package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"katalog/internal/config"
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/responses"
	"katalog/internal/services"
)

// App is the application object: it owns the HTTP server, its middleware
// stack and routes, and is constructed exactly once at process entry with its
// collaborators injected.
type App struct {
	cfg   config.Config
	fiber *fiber.App
}

// NewApp wires the full application. repo is the product store; events may be
// nil to disable product event publishing.
func NewApp(cfg config.Config, repo repositories.ProductRepository, events services.EventPublisher) *App {
	app := fiber.New(fiber.Config{
		AppName:      "katalog",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: responses.ErrorHandler,
	})

	// Security middleware, ahead of all routes.
	app.Use(recoverer.New())
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self'; img-src 'self' data: https:",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return responses.Error(c, fiber.StatusTooManyRequests,
				"Too many requests from this IP, please try again later.")
		},
	}))
	app.Use(middleware.SanitizeBody())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return responses.Success(c, "Server is running!", nil)
	})

	productService := services.NewProductService(repo, events)
	productHandler := handlers.NewProductHandler(productService)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	// Unmatched paths get the fixed 404 envelope, not the error boundary.
	app.Use(func(c *fiber.Ctx) error {
		return responses.Error(c, fiber.StatusNotFound, "Route not found")
	})

	return &App{
		cfg:   cfg,
		fiber: app,
	}
}

// Start begins serving on the configured port. It blocks until the listener
// stops.
func (a *App) Start() error {
	return a.fiber.Listen(a.cfg.AppPort)
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	return a.fiber.Shutdown()
}
