package handlers

import (
	"bytes"
	"fmt"
	"log"

	"github.com/rutabikini/site/cache"
	"github.com/rutabikini/site/config"
	"github.com/rutabikini/site/content"
	"github.com/rutabikini/site/ui"
)

const landingCacheKey = "landing"

var (
	siteConfig = config.Default()
	pageCache  *cache.Cache[[]byte]
)

// Init sets the configuration the handlers render with and creates the
// page cache. It must run before the app serves requests.
func Init(cfg *config.Config) error {
	c, err := cache.New[[]byte](func(b []byte) int64 {
		return int64(len(b))
	}, "Page Cache", 8<<20, config.PageCacheTTL)
	if err != nil {
		return fmt.Errorf("error creating page cache: %w", err)
	}
	siteConfig = cfg
	pageCache = c
	log.Printf("[page-cache] Initialized successfully")
	return nil
}

func checkoutLinks(cfg *config.Config) map[content.PlanID]string {
	return map[content.PlanID]string{
		content.PlanBasic:    cfg.CheckoutBasicURL,
		content.PlanComplete: cfg.CheckoutCompleteURL,
	}
}

// RenderLanding renders the full page with every FAQ entry collapsed.
func RenderLanding(cfg *config.Config) ([]byte, error) {
	l, err := content.Landing.FAQList()
	if err != nil {
		return nil, fmt.Errorf("error building faq list: %w", err)
	}

	var buf bytes.Buffer
	err = ui.LandingPage(ui.LandingProps{
		Content:      content.Landing,
		FAQ:          l,
		Language:     cfg.LanguageTag(),
		Checkout:     checkoutLinks(cfg),
		SupportEmail: cfg.SupportEmail,
	}).Render(&buf)
	if err != nil {
		return nil, fmt.Errorf("error rendering landing page: %w", err)
	}
	return buf.Bytes(), nil
}
