package ui

import (
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/rutabikini/site/config"
)

// ---- Page Layout ----

// tailwindTheme registers the brand palette with the Tailwind runtime.
const tailwindTheme = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        'brand-coral': '#E4735F',
        'brand-sand': '#F6EEE3',
        'brand-dark': '#2B2321',
      },
      fontFamily: {
        serif: ['"Playfair Display"', 'Georgia', 'serif'],
      },
    },
  },
}`

// Without the reveal script, directive elements would stay at their initial state.
const noscriptReveal = `<noscript><style>[data-reveal]{opacity:1 !important;transform:none !important}</style></noscript>`

func Page(title, description string, lang language.Tag, content ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: description,
		Language:    lang.String(),
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Script(Src(config.TailwindCSSURL)),
			Script(g.Raw(tailwindTheme)),
			Link(Rel("stylesheet"), Href("/static/css/brand.css")),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			Script(
				Type("text/javascript"),
				Src("/static/js/reveal.js"),
				Defer(),
			),
			g.Raw(noscriptReveal),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen bg-brand-sand text-brand-dark"),
				g.Group(content),
			),
		},
	})
}
