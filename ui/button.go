package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

const buttonBaseClass = "inline-block text-center px-8 py-4 text-lg font-semibold rounded-full transition-all duration-300 transform hover:scale-105 shadow-md active:scale-95"

// ParseButtonVariant maps a variant name to a ButtonVariant.
func ParseButtonVariant(s string) (ButtonVariant, error) {
	switch v := ButtonVariant(s); v {
	case ButtonPrimary, ButtonSecondary:
		return v, nil
	default:
		return "", fmt.Errorf("unknown button variant %q", s)
	}
}

// ctaVariant resolves a content style name, defaulting to primary.
func ctaVariant(style string) ButtonVariant {
	if style == "" {
		return ButtonPrimary
	}
	v, err := ParseButtonVariant(style)
	if err != nil {
		panic("ui: " + err.Error())
	}
	return v
}

// getButtonClass panics on a variant outside the enumeration so a typo never
// renders with the wrong colors.
func getButtonClass(variant ButtonVariant) string {
	switch variant {
	case ButtonPrimary:
		return buttonBaseClass + " bg-brand-coral text-white hover:bg-opacity-90"
	case ButtonSecondary:
		return buttonBaseClass + " bg-white text-brand-coral border-2 border-brand-coral hover:bg-brand-coral hover:text-white"
	default:
		panic(fmt.Sprintf("ui: unknown button variant %q", variant))
	}
}

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href  string
	class string
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

// CTAButton renders a call to action. Without an href it is an inert
// type="button"; where it leads is decided by the caller.
func CTAButton(text string, variant ButtonVariant, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := getButtonClass(variant)
	if config.class != "" {
		class += " " + config.class
	}

	if config.href != "" {
		return A(Href(config.href), Class(class), g.Text(text))
	}
	return Button(Type("button"), Class(class), g.Text(text))
}
