package server

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutabikini/site/config"
)

func TestRoutes(t *testing.T) {
	app, err := New(config.Default())
	require.NoError(t, err)

	tests := []struct {
		name        string
		target      string
		wantCode    int
		contentType string
		bodyHas     string
	}{
		{name: "landing page", target: "/", wantCode: fiber.StatusOK, contentType: "text/html", bodyHas: `id="pricing"`},
		{name: "faq fragment", target: "/faq/0/toggle?open=false", wantCode: fiber.StatusOK, contentType: "text/html", bodyHas: `aria-expanded="true"`},
		{name: "health", target: "/health", wantCode: fiber.StatusOK, contentType: "application/json", bodyHas: `"status":"ok"`},
		{name: "reveal script", target: "/static/js/reveal.js", wantCode: fiber.StatusOK, bodyHas: "IntersectionObserver"},
		{name: "brand stylesheet", target: "/static/css/brand.css", wantCode: fiber.StatusOK, bodyHas: "[data-reveal]"},
		{name: "unknown route", target: "/checkout", wantCode: fiber.StatusNotFound, contentType: "text/html", bodyHas: "Error 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.contentType != "" {
				assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), tt.contentType)
			}
			assert.Contains(t, string(body), tt.bodyHas)
		})
	}
}

func TestLandingPageETag(t *testing.T) {
	app, err := New(config.Default())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)
}
