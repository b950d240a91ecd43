package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutabikini/site/config"
	"github.com/rutabikini/site/content"
)

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	require.NoError(t, Init(cfg))

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/", HandleHome)
	app.Get("/faq/:index/toggle", HandleFAQToggle)
	app.Get("/health", HandleHealth)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	headers := map[string]string{
		fiber.HeaderContentType: resp.Header.Get(fiber.HeaderContentType),
		"X-Page-Cache":          resp.Header.Get("X-Page-Cache"),
	}
	return resp.StatusCode, string(body), headers
}

func TestHandleHome(t *testing.T) {
	app := newTestApp(t, config.Default())

	code, body, headers := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, headers[fiber.HeaderContentType], "text/html")
	assert.Equal(t, "miss", headers["X-Page-Cache"])
	assert.Contains(t, body, `<html lang="es">`)
	assert.Contains(t, body, `id="faq-list"`)

	code, cached, headers := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "hit", headers["X-Page-Cache"])
	assert.Equal(t, body, cached)
}

func TestHandleHomeUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CheckoutCompleteURL = "https://pay.example.com/complete"
	cfg.SupportEmail = "soporte@example.com"
	app := newTestApp(t, cfg)

	_, body, _ := get(t, app, "/")
	assert.Contains(t, body, `href="https://pay.example.com/complete"`)
	assert.Contains(t, body, "mailto:soporte@example.com")
}

func TestHandleFAQToggle(t *testing.T) {
	app := newTestApp(t, config.Default())
	answer := content.Landing.FAQ[1].Answer

	tests := []struct {
		name       string
		target     string
		wantCode   int
		wantOpen   bool
		wantNextQS string
	}{
		{name: "open a closed entry", target: "/faq/1/toggle?open=false", wantCode: fiber.StatusOK, wantOpen: true, wantNextQS: "open=true"},
		{name: "close an open entry", target: "/faq/1/toggle?open=true", wantCode: fiber.StatusOK, wantOpen: false, wantNextQS: "open=false"},
		{name: "missing state means closed", target: "/faq/1/toggle", wantCode: fiber.StatusOK, wantOpen: true, wantNextQS: "open=true"},
		{name: "index past the end", target: "/faq/7/toggle?open=false", wantCode: fiber.StatusNotFound},
		{name: "negative index", target: "/faq/-1/toggle?open=false", wantCode: fiber.StatusNotFound},
		{name: "non numeric index", target: "/faq/abc/toggle?open=false", wantCode: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body, headers := get(t, app, tt.target)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, headers[fiber.HeaderContentType], "text/html")
			if tt.wantCode != fiber.StatusOK {
				assert.Contains(t, body, fmt.Sprintf("Error %d", tt.wantCode))
				return
			}

			assert.True(t, strings.HasPrefix(body, `<div id="faq-1"`), body)
			assert.Equal(t, tt.wantOpen, strings.Contains(body, answer))
			assert.Equal(t, tt.wantOpen, strings.Contains(body, "rotate-180"))
			assert.Contains(t, body, fmt.Sprintf(`aria-expanded="%t"`, tt.wantOpen))
			assert.Contains(t, body, "/faq/1/toggle?"+tt.wantNextQS)
		})
	}
}

// A client holding seven collapsed entries activates 2, then 5, then 2 again.
func TestFAQAccordionOverHTTP(t *testing.T) {
	app := newTestApp(t, config.Default())

	var shown [7]bool
	activate := func(i int) {
		code, body, _ := get(t, app, fmt.Sprintf("/faq/%d/toggle?open=%t", i, shown[i]))
		require.Equal(t, fiber.StatusOK, code)
		shown[i] = strings.Contains(body, `aria-expanded="true"`)
	}

	activate(1)
	assert.Equal(t, [7]bool{false, true, false, false, false, false, false}, shown)

	activate(4)
	assert.Equal(t, [7]bool{false, true, false, false, true, false, false}, shown)

	activate(1)
	assert.Equal(t, [7]bool{false, false, false, false, true, false, false}, shown)
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(t, config.Default())

	code, body, headers := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, headers[fiber.HeaderContentType], "application/json")

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Contains(t, health, "cache_items")
	assert.Contains(t, health, "cache")
}

func TestCustomErrorHandler(t *testing.T) {
	app := newTestApp(t, config.Default())

	code, body, _ := get(t, app, "/no-such-page")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Contains(t, body, "Error 404")
	assert.Contains(t, body, `<html lang="es">`)
}

func TestCustomErrorHandlerUsesSiteLanguage(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SITE_LANGUAGE", "pt-BR")
	t.Setenv("CHECKOUT_BASIC_URL", "")
	t.Setenv("CHECKOUT_COMPLETE_URL", "")
	t.Setenv("SUPPORT_EMAIL", "")
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	app := newTestApp(t, cfg)

	code, body, _ := get(t, app, "/faq/99/toggle")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Contains(t, body, `<html lang="pt-BR">`)
}
