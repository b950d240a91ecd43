package ui

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

// PageSection wraps content in a padded band with a centered, width-limited
// column. class extends the default treatment.
func PageSection(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class(joinClass("py-16 px-6 md:py-24", class)),
		Div(
			Class("max-w-4xl mx-auto"),
			g.Group(children),
		),
	)
}

// Card is a bordered, shadowed, rounded container.
func Card(class string, children ...g.Node) g.Node {
	return Div(
		Class(joinClass("bg-white p-8 rounded-2xl shadow-sm border border-black/5 hover:shadow-md transition-shadow duration-300", class)),
		g.Group(children),
	)
}

func sectionHeading(text string, class string) g.Node {
	return H2(Class(joinClass("text-3xl md:text-4xl font-bold", class)), g.Text(text))
}

func checkItem(text, iconName, iconClass string, size int, bold bool) g.Node {
	return Li(
		Class(joinClass("flex items-start gap-2", boolClass(bold, "font-bold"))),
		Icon(iconName, size, iconClass, "shrink-0 mt-1"),
		g.Text(text),
	)
}

func joinClass(base, extra string) string {
	switch {
	case extra == "":
		return base
	case base == "":
		return extra
	}
	return base + " " + extra
}

func boolClass(on bool, class string) string {
	if on {
		return class
	}
	return ""
}

// ---- Message Components ----

func ErrorPage(code int, message string, lang language.Tag) g.Node {
	title := fmt.Sprintf("Error %d", code)
	return Page(
		title,
		"",
		lang,
		PageSection("error", "text-center",
			H1(Class("text-4xl font-bold mb-8"), g.Text(title)),
			P(Class("text-lg mb-8"), g.Text(message)),
			g.If(code != http.StatusInternalServerError,
				CTAButton("Volver al inicio", ButtonSecondary, withHref("/")),
			),
		),
	)
}
