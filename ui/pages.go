package ui

import (
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rutabikini/site/content"
	"github.com/rutabikini/site/faq"
)

// LandingProps is everything the landing page is rendered from.
type LandingProps struct {
	Content      content.Page
	FAQ          *faq.List
	Language     language.Tag
	Checkout     map[content.PlanID]string
	SupportEmail string
}

// BlockIDs lists the page blocks in display order.
var BlockIDs = []string{
	"hero", "offer", "benefits", "urgency", "audience", "testimonials",
	"inclusions", "bonuses", "pricing", "guarantee", "faq", "footer",
}

func LandingPage(p LandingProps) g.Node {
	c := p.Content
	return Page(
		c.Title,
		c.Description,
		p.Language,
		heroBlock(c.Hero),
		offerBlock(c.Offer),
		benefitsBlock(c.Benefits),
		urgencyBlock(c.Urgency),
		audienceBlock(c.Audience),
		testimonialsBlock(c.Testimonials),
		inclusionsBlock(c.Inclusions),
		bonusesBlock(c.Bonuses),
		pricingBlock(c.Pricing, p.Language, p.Checkout),
		guaranteeBlock(c.Guarantee),
		faqBlock(c.FAQHeading, p.FAQ),
		footerBlock(c.Footer, p.SupportEmail),
	)
}

func lineNode(l content.Line, class string) g.Node {
	cls := joinClass(class, joinClass(lineWeight(l), boolClass(l.Italic, "italic")))
	return P(
		g.If(cls != "", Class(cls)),
		g.Text(l.Text),
	)
}

// lineWeight maps a line's emphasis to a font weight class. Bold wins over
// Semibold.
func lineWeight(l content.Line) string {
	switch {
	case l.Bold:
		return "font-bold"
	case l.Semibold:
		return "font-semibold"
	}
	return ""
}

func heroBlock(h content.Hero) g.Node {
	var lines []g.Node
	for _, l := range h.Lines {
		lines = append(lines, lineNode(l, ""))
	}
	var tags []g.Node
	for _, t := range h.Tags {
		tags = append(tags, Span(g.Text(t)))
	}

	return PageSection("hero", "bg-brand-sand",
		Reveal(FadeUp, "text-center",
			H1(Class("text-4xl md:text-6xl font-bold leading-tight mb-6"), g.Text(h.Headline)),
			P(Class("text-xl md:text-2xl text-brand-dark/70 italic font-serif mb-8"), g.Text(h.Subheadline)),
			Div(
				Class("max-w-2xl mx-auto space-y-4 text-lg mb-10"),
				g.Group(lines),
				Div(Class("flex flex-wrap justify-center gap-4 text-brand-coral font-bold"), g.Group(tags)),
			),
			CTAButton(h.CTA, ctaVariant(h.CTAStyle), withHref("#pricing"), withClass("w-full md:w-auto")),
		),
	)
}

func offerBlock(o content.Offer) g.Node {
	var cards []g.Node
	for _, card := range o.Cards {
		var bullets []g.Node
		for _, b := range card.Bullets {
			bullets = append(bullets, checkItem(b, "check", "text-green-500", 18, false))
		}
		cards = append(cards, Card("",
			Div(
				Class("flex items-center gap-3 mb-4 text-brand-coral"),
				Icon(card.Icon, 24),
				H3(Class("text-xl font-bold"), g.Text(card.Title)),
			),
			Ul(Class("space-y-2"), g.Group(bullets)),
		))
	}
	var closing []g.Node
	for _, l := range o.Closing {
		closing = append(closing, lineNode(l, ""))
	}

	return PageSection("offer", "bg-white",
		Reveal(FadeUp, "",
			sectionHeading(o.Heading, "text-center mb-12"),
			Div(Class("grid md:grid-cols-2 gap-8"), g.Group(cards)),
			Div(Class("mt-12 text-center text-lg space-y-2"), g.Group(closing)),
		),
	)
}

func benefitsBlock(b content.Benefits) g.Node {
	var items []g.Node
	for _, item := range b.Items {
		items = append(items, Div(
			Class("flex flex-col md:flex-row gap-6 items-start"),
			Div(Class("bg-white p-4 rounded-full shadow-sm text-brand-coral"), Icon(item.Icon, 32)),
			Div(
				H3(Class("text-2xl font-bold mb-2"), g.Text(item.Title)),
				P(Class(joinClass("text-lg text-brand-dark/80", boolClass(item.Italic, "italic"))), g.Text(item.Text)),
			),
		))
	}
	var closing []g.Node
	for _, s := range b.Closing {
		closing = append(closing, P(g.Text(s)))
	}

	return PageSection("benefits", "bg-brand-sand",
		Reveal(FadeUp, "",
			sectionHeading(b.Heading, "text-center mb-12"),
			Div(Class("space-y-12"), g.Group(items)),
			Div(Class("mt-16 text-center text-xl italic font-serif"), g.Group(closing)),
		),
	)
}

func urgencyBlock(u content.Urgency) g.Node {
	var lines []g.Node
	for _, l := range u.Lines {
		lines = append(lines, lineNode(l, ""))
	}

	return PageSection("urgency", "bg-brand-coral text-white text-center",
		Reveal(FadeUp, "",
			H2(Class("text-3xl md:text-5xl font-bold mb-8"), g.Text(u.Headline)),
			Div(Class("text-xl space-y-4 mb-10"), g.Group(lines)),
			CTAButton(u.CTA, ctaVariant(u.CTAStyle), withHref("#pricing")),
		),
	)
}

func audienceBlock(a content.Audience) g.Node {
	var items []g.Node
	for i, item := range a.Items {
		items = append(items, checkItem(item, "check", "text-brand-coral", 24, i == len(a.Items)-1))
	}

	return PageSection("audience", "bg-white",
		Reveal(FadeUp, "",
			Card("bg-brand-sand/30 border-none",
				H2(
					Class("text-3xl font-bold mb-8 flex items-center gap-3"),
					Icon("heart", 24, "text-brand-coral fill-brand-coral"),
					g.Text(a.Heading),
				),
				Ul(Class("grid md:grid-cols-2 gap-4 text-lg"), g.Group(items)),
			),
		),
	)
}

func testimonialsBlock(t content.Testimonials) g.Node {
	var cards []g.Node
	for _, item := range t.Items {
		cards = append(cards, Card("italic",
			P(Class("text-lg mb-4"), g.Text("“"+item.Quote+"”")),
			P(Class("font-bold text-brand-coral"), g.Text("— "+item.Author)),
		))
	}

	return PageSection("testimonials", "bg-brand-sand",
		Reveal(FadeUp, "",
			sectionHeading(t.Heading, "text-center mb-12"),
			Div(Class("grid md:grid-cols-2 gap-8"), g.Group(cards)),
		),
	)
}

func inclusionsBlock(in content.Inclusions) g.Node {
	var items []g.Node
	for _, item := range in.Items {
		var body g.Node
		if len(item.Bullets) > 0 {
			var bullets []g.Node
			for _, b := range item.Bullets {
				bullets = append(bullets, Li(g.Text("• "+b)))
			}
			body = Ul(Class("text-brand-dark/80"), g.Group(bullets))
		} else {
			body = P(Class("text-brand-dark/80"), g.Text(item.Description))
		}
		items = append(items, Div(
			Class("border-l-4 border-brand-coral pl-6 py-2"),
			H3(Class("text-xl font-bold mb-2"), g.Text(item.Title)),
			body,
		))
	}

	return PageSection("inclusions", "bg-white",
		Reveal(FadeUp, "",
			sectionHeading(in.Heading, "text-center mb-12"),
			Div(Class("space-y-6"), g.Group(items)),
		),
	)
}

func bonusesBlock(b content.Bonuses) g.Node {
	var cards []g.Node
	for _, item := range b.Items {
		cards = append(cards, Card(joinClass("flex flex-col items-center text-center", boolClass(item.FullWidth, "md:col-span-2")),
			Icon("gift", 40, "text-brand-coral mb-4"),
			H3(Class("text-xl font-bold mb-2"), g.Text(item.Title)),
			P(Class("text-brand-dark/80"), g.Text(item.Description)),
		))
	}
	var closing []g.Node
	for _, s := range b.Closing {
		closing = append(closing, P(g.Text(s)))
	}

	return PageSection("bonuses", "bg-brand-sand",
		Reveal(FadeUp, "",
			Div(
				Class("text-center mb-12"),
				sectionHeading(b.Heading, "mb-4"),
				P(Class("text-xl"), g.Text(b.Subheading)),
			),
			Div(Class("grid md:grid-cols-2 gap-6"), g.Group(cards)),
			Div(Class("mt-12 text-center text-xl font-bold"), g.Group(closing)),
		),
	)
}

func planCard(plan content.Plan, lang language.Tag, checkoutURL string) g.Node {
	icon, iconClass := "check", "text-brand-coral"
	if plan.BonusIcons {
		icon = "gift"
	}
	var features []g.Node
	for _, f := range plan.Features {
		features = append(features, checkItem(f, icon, iconClass, 18, plan.BonusIcons))
	}

	cardClass := "relative overflow-hidden border-2 border-transparent"
	badgeClass := "absolute top-0 right-0 bg-gray-200 px-4 py-1 text-sm font-bold rounded-bl-lg"
	if plan.Highlighted {
		cardClass = "relative overflow-hidden border-2 border-brand-coral ring-4 ring-brand-coral/10"
		badgeClass = "absolute top-0 right-0 bg-brand-coral text-white px-4 py-1 text-sm font-bold rounded-bl-lg"
	}

	var opts []buttonOption
	opts = append(opts, withClass("w-full"))
	if checkoutURL != "" {
		opts = append(opts, withHref(checkoutURL))
	}

	return Card(cardClass,
		g.Attr("data-plan", string(plan.ID)),
		Div(Class(badgeClass), g.Text(plan.Badge)),
		H3(Class("text-2xl font-bold mb-4"), g.Text(plan.Name)),
		Div(
			Class("text-4xl font-bold mb-6 text-brand-coral"),
			g.Text(plan.PriceLabel(lang)+" "),
			Span(Class("text-lg text-brand-dark/60 font-normal"), g.Text(plan.CurrencyCode())),
		),
		g.If(plan.Preamble != "", Div(Class("mb-4 font-bold text-brand-coral"), g.Text(plan.Preamble))),
		Ul(Class("space-y-3 mb-8"), g.Group(features)),
		P(Class("text-brand-dark/70 mb-8 italic"), g.Text(plan.Tagline)),
		CTAButton(plan.CTA, ctaVariant(plan.CTAStyle), opts...),
	)
}

func pricingBlock(p content.Pricing, lang language.Tag, checkout map[content.PlanID]string) g.Node {
	var plans []g.Node
	for _, plan := range p.Plans {
		plans = append(plans, planCard(plan, lang, checkout[plan.ID]))
	}

	return PageSection("pricing", "bg-white",
		Reveal(FadeUp, "",
			H2(Class("text-3xl md:text-5xl font-bold text-center mb-16"), g.Text(p.Heading)),
			Div(Class("grid md:grid-cols-2 gap-12 items-start"), g.Group(plans)),
			Div(
				Class("mt-16 text-center max-w-2xl mx-auto"),
				P(Class("text-lg italic mb-4"), g.Text(p.NoteHeading)),
				P(Class("text-brand-dark/80"), g.Text(p.Note)),
			),
		),
	)
}

func guaranteeBlock(gu content.Guarantee) g.Node {
	var paragraphs []g.Node
	for _, l := range gu.Paragraphs {
		paragraphs = append(paragraphs, lineNode(l, boolClass(l.Bold, "text-brand-dark")))
	}

	return PageSection("guarantee", "bg-brand-sand",
		Reveal(FadeUp, "",
			Card("flex flex-col md:flex-row items-center gap-8 text-center md:text-left",
				Div(Class("bg-brand-coral/10 p-6 rounded-full"), Icon("shield-check", 80, "text-brand-coral")),
				Div(
					H2(Class("text-3xl font-bold mb-4"), g.Text(gu.Heading)),
					Div(Class("text-lg space-y-4 text-brand-dark/80"), g.Group(paragraphs)),
				),
			),
		),
	)
}

func faqBlock(heading string, l *faq.List) g.Node {
	return PageSection("faq", "bg-white",
		sectionHeading(heading, "text-center mb-12"),
		FAQList(l),
	)
}

func footerBlock(f content.Footer, supportEmail string) g.Node {
	var disclaimers []g.Node
	for _, d := range f.Disclaimers {
		disclaimers = append(disclaimers, P(g.Text(d)))
	}

	return Footer(
		ID("footer"),
		Class("bg-brand-dark text-white py-12 px-6"),
		Div(
			Class("max-w-4xl mx-auto text-center space-y-6"),
			H2(Class("text-2xl font-serif italic"), g.Text(f.Brand)),
			P(Class("text-white/60"), g.Text(f.Tagline)),
			Div(Class("text-sm text-white/40 space-y-2"), g.Group(disclaimers)),
			P(Class("text-white/60"), g.Text(f.Support)),
			g.If(supportEmail != "",
				A(Href("mailto:"+supportEmail), Class("text-white/80 underline"), g.Text(supportEmail)),
			),
		),
	)
}
