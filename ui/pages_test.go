package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rutabikini/site/content"
)

func landingHTML(t *testing.T, checkout map[content.PlanID]string, supportEmail string) string {
	t.Helper()
	l, err := content.Landing.FAQList()
	require.NoError(t, err)
	return renderString(t, LandingPage(LandingProps{
		Content:      content.Landing,
		FAQ:          l,
		Language:     language.Spanish,
		Checkout:     checkout,
		SupportEmail: supportEmail,
	}))
}

func TestLandingPageBlockOrder(t *testing.T) {
	html := landingHTML(t, nil, "")

	last := -1
	for _, id := range BlockIDs {
		idx := strings.Index(html, `id="`+id+`"`)
		require.NotEqual(t, -1, idx, "block %s missing", id)
		assert.Greater(t, idx, last, "block %s out of order", id)
		last = idx
	}
}

func TestLandingPageHead(t *testing.T) {
	html := landingHTML(t, nil, "")
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"), html[:40])
	assert.Contains(t, html, `<html lang="es">`)
	assert.Contains(t, html, "<title>Ruta Bikini Emprendedora</title>")
	assert.Contains(t, html, "/static/js/reveal.js")
	assert.Contains(t, html, "/static/css/brand.css")
}

func TestLandingPageFAQCollapsed(t *testing.T) {
	html := landingHTML(t, nil, "")

	assert.Equal(t, 7, strings.Count(html, `aria-expanded="false"`))
	assert.NotContains(t, html, `aria-expanded="true"`)
	for i, pair := range content.Landing.FAQ {
		assert.Contains(t, html, pair.Question)
		assert.NotContains(t, html, pair.Answer, "answer %d rendered while closed", i)
	}
}

func TestLandingPageCheckoutLinks(t *testing.T) {
	t.Run("without checkout links", func(t *testing.T) {
		html := landingHTML(t, nil, "")
		assert.Contains(t, html, "QUIERO EL PLAN BÁSICO")
		assert.Contains(t, html, "QUIERO EL PLAN COMPLETO")
		assert.NotContains(t, html, "https://pay.example.com")
		assert.Equal(t, 2, strings.Count(html, `href="#pricing"`))
	})

	t.Run("with checkout links", func(t *testing.T) {
		html := landingHTML(t, map[content.PlanID]string{
			content.PlanBasic:    "https://pay.example.com/basic",
			content.PlanComplete: "https://pay.example.com/complete",
		}, "")
		assert.Contains(t, html, `href="https://pay.example.com/basic"`)
		assert.Contains(t, html, `href="https://pay.example.com/complete"`)
	})
}

func TestLandingPagePricing(t *testing.T) {
	html := landingHTML(t, nil, "")
	assert.Contains(t, html, `data-plan="basic"`)
	assert.Contains(t, html, `data-plan="complete"`)
	assert.Contains(t, html, "🥇 RECOMENDADO")
	assert.Contains(t, html, "ring-brand-coral/10")
	assert.Contains(t, html, `$4 <span class="text-lg text-brand-dark/60 font-normal">USD</span>`)
	assert.Contains(t, html, `$7 <span class="text-lg text-brand-dark/60 font-normal">USD</span>`)
	assert.NotContains(t, html, "4,00")
}

func blockHTML(t *testing.T, html, id, next string) string {
	t.Helper()
	start := strings.Index(html, `id="`+id+`"`)
	end := strings.Index(html, `id="`+next+`"`)
	require.True(t, start >= 0 && end > start, "block %s not found before %s", id, next)
	return html[start:end]
}

func TestLandingPageHeroEmphasis(t *testing.T) {
	hero := blockHTML(t, landingHTML(t, nil, ""), "hero", "offer")
	assert.Contains(t, hero, `<p class="font-semibold">Mañana puedes tener tu primera bikini lista.</p>`)
	assert.Contains(t, hero, `<p class="italic">Es tener el orden correcto.</p>`)
}

func TestLandingPageUrgencyButtonHover(t *testing.T) {
	urgency := blockHTML(t, landingHTML(t, nil, ""), "urgency", "audience")
	assert.Equal(t, 1, strings.Count(urgency, "hover:bg-"), urgency)
	assert.Contains(t, urgency, `href="#pricing"`)
}

func TestLandingPageSupportEmail(t *testing.T) {
	assert.NotContains(t, landingHTML(t, nil, ""), "mailto:")
	assert.Contains(t, landingHTML(t, nil, "soporte@example.com"), `href="mailto:soporte@example.com"`)
}

func TestLandingPageIsDeterministic(t *testing.T) {
	assert.Equal(t, landingHTML(t, nil, ""), landingHTML(t, nil, ""))
}
