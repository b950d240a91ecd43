package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rutabikini/site/content"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}

	// The page must be renderable from the static content.
	if _, err := content.Landing.FAQList(); err != nil {
		health["status"] = "unhealthy"
		health["content"] = err.Error()
		c.Status(fiber.StatusServiceUnavailable)
	}

	if pageCache != nil {
		health["cache_items"] = pageCache.GetItemCount()
		health["cache"] = pageCache.Stats()
	}

	return c.JSON(health)
}
