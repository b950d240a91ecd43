package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rutabikini/site/config"
	h "github.com/rutabikini/site/handlers"
	"github.com/rutabikini/site/static"
)

// New builds the fiber app with all middleware and routes.
func New(cfg *config.Config) (*fiber.App, error) {
	if err := h.Init(cfg); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          h.CustomErrorHandler,
		ReadTimeout:           config.ServerReadTimeout,
		WriteTimeout:          config.ServerWriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(h.RateLimiter())
	app.Use(etag.New())

	// Embedded assets
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(static.FS),
		PathPrefix: static.Root,
		MaxAge:     config.StaticMaxAge,
	}))

	// Landing page
	app.Get("/", h.HandleHome)

	// FAQ accordion fragments for htmx
	app.Get("/faq/:index/toggle", h.HandleFAQToggle)

	// Health check
	app.Get("/health", h.HandleHealth)

	return app, nil
}

// Start builds the app and listens on the configured port.
func Start(cfg *config.Config) error {
	app, err := New(cfg)
	if err != nil {
		return fmt.Errorf("error initializing server: %w", err)
	}

	log.Printf("[server] Starting server on port %s...", cfg.Port)
	return app.Listen(":" + cfg.Port)
}
