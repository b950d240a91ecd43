package ui

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/rutabikini/site/faq"
)

// ---- FAQ Accordion ----

func faqItemID(index int) string {
	return fmt.Sprintf("faq-%d", index)
}

// FAQToggleURL is the fragment route that returns item index after one
// activation from the given state.
func FAQToggleURL(index int, open bool) string {
	return fmt.Sprintf("/faq/%d/toggle?open=%t", index, open)
}

// FAQItem renders one accordion entry. The header swaps the whole item for
// the toggled fragment; the answer exists in the DOM only while open.
func FAQItem(index int, e *faq.Entry) g.Node {
	open := e.IsOpen()
	return Div(
		ID(faqItemID(index)),
		Class("border-b border-black/10 py-4"),
		Button(
			Type("button"),
			Class("w-full flex justify-between items-center text-left focus:outline-none"),
			g.Attr("aria-expanded", strconv.FormatBool(open)),
			hx.Get(FAQToggleURL(index, open)),
			hx.Target("#"+faqItemID(index)),
			hx.Swap("outerHTML"),
			Span(Class("font-semibold text-lg"), g.Text(e.Question())),
			Icon("chevron-down", 24, "transition-transform duration-300", boolClass(open, "rotate-180")),
		),
		g.If(open,
			Div(
				Class("mt-4 text-brand-dark/80 leading-relaxed whitespace-pre-line"),
				answerLines(e.Answer()),
			),
		),
	)
}

// answerLines keeps authored line breaks as <br> elements.
func answerLines(answer string) g.Node {
	lines := strings.Split(strings.ReplaceAll(answer, "\r\n", "\n"), "\n")
	nodes := make([]g.Node, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(line))
	}
	return g.Group(nodes)
}

// FAQList renders every entry of l in order.
func FAQList(l *faq.List) g.Node {
	var items []g.Node
	for i, e := range l.Entries() {
		items = append(items, FAQItem(i, e))
	}
	return Div(
		ID("faq-list"),
		Class("space-y-2"),
		g.Group(items),
	)
}
