package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Reveal Directives ----

// RevealState is a visual state an element animates from or to.
type RevealState struct {
	Opacity float64
	OffsetY int
}

func (s RevealState) style() string {
	return fmt.Sprintf("opacity:%s;transform:translateY(%dpx)",
		strconv.FormatFloat(s.Opacity, 'f', -1, 64), s.OffsetY)
}

// RevealDirective tells the reveal script how to animate an element when it
// first enters the viewport. The server never observes the animation.
type RevealDirective struct {
	Initial RevealState
	Target  RevealState
	Once    bool
}

// FadeUp fades content in while sliding it up 20px, once.
var FadeUp = RevealDirective{
	Initial: RevealState{Opacity: 0, OffsetY: 20},
	Target:  RevealState{Opacity: 1, OffsetY: 0},
	Once:    true,
}

func (d RevealDirective) trigger() string {
	if d.Once {
		return "once"
	}
	return "always"
}

// Reveal wraps children in an element carrying the directive.
func Reveal(d RevealDirective, class string, children ...g.Node) g.Node {
	return Div(
		g.If(class != "", Class(class)),
		g.Attr("data-reveal", d.trigger()),
		g.Attr("data-reveal-initial", d.Initial.style()),
		g.Attr("data-reveal-target", d.Target.style()),
		g.Attr("style", d.Initial.style()),
		g.Group(children),
	)
}
