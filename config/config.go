package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	// SiteName is the product name used in titles and the footer.
	SiteName = "Ruta Bikini Emprendedora"

	// TailwindCSSURL is the Tailwind runtime that resolves utility classes.
	TailwindCSSURL = "https://cdn.tailwindcss.com"
	// HTMXURL is the htmx build used for fragment swaps.
	HTMXURL = "https://unpkg.com/htmx.org@1.9.12"

	// ServerReadTimeout and ServerWriteTimeout bound a single request.
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second

	// ServerRateLimitMax requests are allowed per client per ServerRateLimitExp.
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute

	// StaticMaxAge is the cache lifetime (seconds) for embedded assets.
	StaticMaxAge = 3600

	// PageCacheTTL is how long a rendered page stays in the page cache.
	PageCacheTTL = 1 * time.Hour
)

const (
	defaultPort     = "8080"
	defaultLanguage = "es"
)

// Config holds the runtime configuration read from the environment.
type Config struct {
	Port                string `validate:"required,numeric"`
	Language            string `validate:"required"`
	CheckoutBasicURL    string `validate:"omitempty,url"`
	CheckoutCompleteURL string `validate:"omitempty,url"`
	SupportEmail        string `validate:"omitempty,email"`

	tag language.Tag
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                getenv("PORT", defaultPort),
		Language:            getenv("SITE_LANGUAGE", defaultLanguage),
		CheckoutBasicURL:    os.Getenv("CHECKOUT_BASIC_URL"),
		CheckoutCompleteURL: os.Getenv("CHECKOUT_COMPLETE_URL"),
		SupportEmail:        os.Getenv("SUPPORT_EMAIL"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:     defaultPort,
		Language: defaultLanguage,
		tag:      language.Spanish,
	}
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return fmt.Errorf("invalid SITE_LANGUAGE %q: %w", c.Language, err)
	}
	c.tag = tag
	return nil
}

// LanguageTag returns the parsed site language.
func (c *Config) LanguageTag() language.Tag {
	if c.tag == language.Und {
		return language.Spanish
	}
	return c.tag
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
