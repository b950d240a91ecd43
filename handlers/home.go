package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleHome serves the landing page. The page is the same for every
// visitor, so the rendered bytes come from the page cache.
func HandleHome(c *fiber.Ctx) error {
	html, hit, err := pageCache.GetOrLoad(landingCacheKey, func() ([]byte, error) {
		return RenderLanding(siteConfig)
	})
	if err != nil {
		return err
	}
	if !hit {
		log.Printf("[page-cache] Rendered landing page (%d bytes)", len(html))
	}
	c.Set("X-Page-Cache", cacheStatus(hit))
	return renderHTML(c, html)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
