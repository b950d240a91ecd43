// Package content holds the static copy of the sales page. Nothing here
// changes at runtime.
package content

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rutabikini/site/faq"
)

// Hero is the opening block.
type Hero struct {
	Headline    string
	Subheadline string
	Lines       []Line
	Tags        []string
	CTA         string
	CTAStyle    string
}

// Line is a paragraph with optional emphasis.
type Line struct {
	Text     string
	Bold     bool
	Semibold bool
	Italic   bool
}

// OfferCard describes one deliverable in the offer demonstration.
type OfferCard struct {
	Icon    string
	Title   string
	Bullets []string
}

// Offer is the "what you get today" block.
type Offer struct {
	Heading string
	Cards   []OfferCard
	Closing []Line
}

// Benefit is one row of the benefits block.
type Benefit struct {
	Icon   string
	Title  string
	Text   string
	Italic bool
}

// Benefits is the transformation block.
type Benefits struct {
	Heading string
	Items   []Benefit
	Closing []string
}

// Urgency is the call-out banner.
type Urgency struct {
	Headline string
	Lines    []Line
	CTA      string
	CTAStyle string
}

// Audience is the "ideal for you if" checklist. The last item is emphasised.
type Audience struct {
	Heading string
	Items   []string
}

// Testimonial is a quote from a customer.
type Testimonial struct {
	Quote  string
	Author string
}

// Testimonials is the social proof block.
type Testimonials struct {
	Heading string
	Items   []Testimonial
}

// Inclusion is one line item of the package contents.
type Inclusion struct {
	Title       string
	Bullets     []string
	Description string
}

// Inclusions lists everything in the bundle.
type Inclusions struct {
	Heading string
	Items   []Inclusion
}

// Bonus is a bonus product card.
type Bonus struct {
	Title       string
	Description string
	FullWidth   bool
}

// Bonuses is the bonus block.
type Bonuses struct {
	Heading    string
	Subheading string
	Items      []Bonus
	Closing    []string
}

// PlanID identifies a pricing tier.
type PlanID string

const (
	PlanBasic    PlanID = "basic"
	PlanComplete PlanID = "complete"
)

// Plan is a pricing tier.
type Plan struct {
	ID          PlanID
	Badge       string
	Name        string
	Currency    currency.Unit
	Price       int
	Preamble    string
	Features    []string
	BonusIcons  bool
	Tagline     string
	CTA         string
	CTAStyle    string
	Highlighted bool
}

// PriceLabel formats the plan price for the given language as the narrow
// currency symbol followed by the whole amount, e.g. "$4".
func (p Plan) PriceLabel(tag language.Tag) string {
	pr := message.NewPrinter(tag)
	return pr.Sprint(currency.NarrowSymbol(p.Currency)) +
		pr.Sprint(number.Decimal(p.Price, number.MaxFractionDigits(0)))
}

// CurrencyCode returns the ISO 4217 code of the plan price.
func (p Plan) CurrencyCode() string {
	return p.Currency.String()
}

// Pricing is the plan comparison block.
type Pricing struct {
	Heading     string
	Plans       []Plan
	NoteHeading string
	Note        string
}

// Guarantee is the refund promise block.
type Guarantee struct {
	Heading    string
	Paragraphs []Line
}

// Footer is the page footer.
type Footer struct {
	Brand       string
	Tagline     string
	Disclaimers []string
	Support     string
}

// Page is the complete copy of the landing page.
type Page struct {
	Title        string
	Description  string
	Hero         Hero
	Offer        Offer
	Benefits     Benefits
	Urgency      Urgency
	Audience     Audience
	Testimonials Testimonials
	Inclusions   Inclusions
	Bonuses      Bonuses
	Pricing      Pricing
	Guarantee    Guarantee
	FAQHeading   string
	FAQ          []faq.Pair
	Footer       Footer
}

// Plan returns the plan with the given id.
func (p Page) Plan(id PlanID) (Plan, bool) {
	for _, plan := range p.Pricing.Plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}
