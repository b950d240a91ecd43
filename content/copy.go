package content

import (
	"golang.org/x/text/currency"

	"github.com/rutabikini/site/faq"
)

const ctaStart = "👉 QUIERO EMPEZAR AHORA"

// Landing is the copy of the sales page, in display order.
var Landing = Page{
	Title:       "Ruta Bikini Emprendedora",
	Description: "La Ruta Paso a Paso para crear tu primera bikini al crochet en 24 horas y empezar a vender.",

	Hero: Hero{
		Headline:    "En 24 horas puedes crear tu primera bikini y dar tu primer paso real como emprendedora.",
		Subheadline: "Aunque hoy no sepas crochet, aquí tienes la Ruta Paso a Paso para empezar a vender sin improvisar.",
		Lines: []Line{
			{Text: "Hoy estás confundida."},
			{Text: "No sabes qué hacer primero."},
			{Text: "Mañana puedes tener tu primera bikini lista.", Semibold: true},
			{Text: "La diferencia no es talento."},
			{Text: "Es tener el orden correcto.", Italic: true},
			{Text: "La Ruta Bikini Emprendedora te muestra exactamente qué aprender, qué modelo hacer primero y cómo empezar a vender desde cero."},
		},
		Tags:     []string{"Sin caos.", "Sin perder tiempo.", "Sin improvisar."},
		CTA:      ctaStart,
		CTAStyle: "primary",
	},

	Offer: Offer{
		Heading: "🧶 Esto es exactamente lo que recibes hoy:",
		Cards: []OfferCard{
			{
				Icon:  "book-open",
				Title: "Ebook Ruta Bikini Emprendedora",
				Bullets: []string{
					"4 etapas organizadas",
					"+60 modelos de bikinis",
					"+600 patrones (escritos + gráficos)",
					"Tablas de medidas",
					"Guía de materiales",
					"Técnicas paso a paso",
				},
			},
			{
				Icon:    "video",
				Title:   "Curso en Video “De Cero a Experta”",
				Bullets: []string{"Clases grabadas", "Demostraciones reales", "Desde nivel principiante"},
			},
			{
				Icon:    "mail",
				Title:   "Acceso inmediato",
				Bullets: []string{"Llega a tu correo", "Descarga directa", "Empiezas hoy mismo"},
			},
			{
				Icon:    "users",
				Title:   "Comunidad privada",
				Bullets: []string{"Resuelves dudas", "Compartes avances", "No estás sola"},
			},
		},
		Closing: []Line{
			{Text: "Sin teoría innecesaria."},
			{Text: "Sin contenido desordenado."},
			{Text: "Todo estructurado para empezar correctamente.", Bold: true},
		},
	},

	Benefits: Benefits{
		Heading: "✨ Lo que realmente cambia cuando dejas de estar perdida y empiezas con dirección:",
		Items: []Benefit{
			{Icon: "target", Title: "Dejas de sentirte confundida", Text: "Ya no pasas horas pensando “¿qué hago primero?”. Tienes un camino claro."},
			{Icon: "clock", Title: "Terminas tu primera bikini en 24 horas", Text: "Y la miras pensando: “Sí puedo hacer esto.”", Italic: true},
			{Icon: "message-circle", Title: "Publicas sin miedo", Text: "No improvisas. Sabes que estás haciendo el modelo correcto para empezar."},
			{Icon: "dollar-sign", Title: "Recibes tu primer mensaje de interés", Text: "Y por primera vez… sientes que esto puede convertirse en algo real."},
			{Icon: "check", Title: "No te bloqueas con los talles", Text: "Sabes ajustarlos. Sabes cómo adaptarlos. No dependes de adivinar."},
			{Icon: "star", Title: "Empiezas a verte como emprendedora", Text: "No como alguien “intentando”. Sino como alguien que ya empezó."},
		},
		Closing: []string{
			"Esto no es solo aprender crochet.",
			"Es dejar de pensar tanto… y empezar a actuar.",
		},
	},

	Urgency: Urgency{
		Headline: "Tu primera bikini puede estar lista en 24 horas.",
		Lines: []Line{
			{Text: "Cada día que postergas es un día más sintiéndote confundida."},
			{Text: "No necesitas más ideas. Necesitas el orden correcto para empezar."},
			{Text: "Empieza hoy. Mañana puedes estar terminando tu primera pieza.", Bold: true},
		},
		CTA:      ctaStart,
		CTAStyle: "secondary",
	},

	Audience: Audience{
		Heading: "Esto es ideal para ti si…",
		Items: []string{
			"Quieres empezar a vender bikinis pero no sabes qué hacer primero",
			"Sientes que tienes ganas… pero te falta dirección",
			"No sabes qué modelo hacer para comenzar",
			"Tienes miedo de perder tiempo haciendo lo incorrecto",
			"No sabes si empezar por aprender puntos básicos o ya hacer modelos",
			"Quieres generar ingresos desde casa",
			"No quieres un hobby… quieres algo que funcione",
			"Te gustaría recibir tu primer pedido y decir: “Esto lo hice yo.”",
		},
	},

	Testimonials: Testimonials{
		Heading: "💬 Mira lo que está pasando con otras chicas que ya empezaron:",
		Items: []Testimonial{
			{Quote: "Pensé que iba a ser difícil, pero en un día ya tenía mi primera bikini lista. Nunca había hecho una antes.", Author: "Camila R."},
			{Quote: "Lo que más me ayudó fue saber exactamente qué modelo hacer primero. Antes estaba perdida.", Author: "Valentina M."},
			{Quote: "Subí mi primera bikini a Instagram y recibí mis primeros mensajes en la misma semana.", Author: "Daniela S."},
			{Quote: "La guía para principiantes me dio confianza. No sabía nada de crochet.", Author: "Sofía L."},
		},
	},

	Inclusions: Inclusions{
		Heading: "📦 Ruta Bikini Emprendedora incluye:",
		Items: []Inclusion{
			{
				Title: "📘 Ebook Paso a Paso (4 Etapas)",
				Bullets: []string{
					"Qué aprender primero",
					"Qué bikinis hacer para empezar",
					"Cómo prepararte para vender",
					"Cómo dar tus primeros pasos",
				},
			},
			{Title: "🧵 +60 Modelos Vendibles", Description: "Organizados por nivel."},
			{Title: "📝 +600 Patrones", Description: "Escritos y con gráficos."},
			{Title: "📏 Tablas de Medidas", Description: "Para ajustar talles sin improvisar."},
			{Title: "🧶 Guía de Materiales", Description: "Qué usar y qué comprar."},
			{Title: "🎥 Curso en Video “De Cero a Experta”", Description: "Clases grabadas desde nivel principiante."},
		},
	},

	Bonuses: Bonuses{
		Heading:    "🎁 Y no solo recibes los bikinis…",
		Subheading: "Recibes todo esto para que realmente puedas vender:",
		Items: []Bonus{
			{Title: "+30 Patrones de Bolsos al Crochet", Description: "Porque vender solo bikinis limita tus ingresos. Aquí puedes ofrecer conjuntos completos."},
			{Title: "Sombreros al Crochet", Description: "Más productos. Más opciones. Más dinero por cliente."},
			{Title: "Comunidad Privada", Description: "Si te quedas con dudas, abandonas. Aquí no te quedas sola."},
			{Title: "Guía de Símbolos y Abreviaturas", Description: "Para que ningún patrón vuelva a confundirte."},
			{Title: "Súper Guía para Principiantes", Description: "Desde cero real. Sin experiencia previa.", FullWidth: true},
		},
		Closing: []string{
			"No es solo aprender.",
			"Es tener todo lo necesario para empezar sin excusas.",
		},
	},

	Pricing: Pricing{
		Heading: "Elige tu plan y empieza hoy",
		Plans: []Plan{
			{
				ID:       PlanBasic,
				Badge:    "🥉 BÁSICO",
				Name:     "PLAN BÁSICO",
				Currency: currency.USD,
				Price:    4,
				Features: []string{
					"Ebook Ruta Bikini Emprendedora",
					"+60 Modelos de bikinis",
					"+600 Patrones",
					"Tablas de Medidas",
					"Guía de Materiales",
					"Curso en Video",
					"Garantía 7 días",
				},
				Tagline: "Empiezas hoy con todo lo esencial para crear y vender tu primera bikini.",
				CTA:     "👉 QUIERO EL PLAN BÁSICO",
			},
			{
				ID:       PlanComplete,
				Badge:    "🥇 RECOMENDADO",
				Name:     "PLAN COMPLETO",
				Currency: currency.USD,
				Price:    7,
				Preamble: "Incluye TODO el Plan Básico y además:",
				Features: []string{
					"Bolsos al Crochet",
					"Sombreros al Crochet",
					"Comunidad Privada",
					"Guía de Símbolos",
					"Súper Guía Principiantes",
				},
				BonusIcons:  true,
				Tagline:     "Más productos. Más soporte. Más oportunidades de ingreso. El ecosistema completo.",
				CTA:         "👉 QUIERO EL PLAN COMPLETO",
				Highlighted: true,
			},
		},
		NoteHeading: "✨ Antes de decidir…",
		Note:        "Muchas empiezan con el básico… y luego vuelven por el completo cuando quieren más productos y más apoyo. Si quieres empezar con todo desde el principio, el Plan Completo es para ti.",
	},

	Guarantee: Guarantee{
		Heading: "🛡 Garantía de 7 Días",
		Paragraphs: []Line{
			{Text: "Tienes 7 días para revisar todo el contenido con calma."},
			{Text: "Si entras, miras el material y sientes que no es para ti, puedes pedir tu reembolso. Sin preguntas incómodas. Sin explicaciones largas."},
			{Text: "El riesgo no es tuyo. Es mío.", Bold: true},
			{Text: "Empieza tranquila. Prueba. Y decide con seguridad.", Italic: true},
		},
	},

	FAQHeading: "❓ Preguntas Frecuentes",
	FAQ: []faq.Pair{
		{
			Question: "¿Necesito saber crochet para empezar?",
			Answer:   "No. El material incluye una Súper Guía para Principiantes y clases en video desde nivel básico. Puedes empezar desde cero.",
		},
		{
			Question: "¿De verdad puedo hacer mi primera bikini en 24 horas?",
			Answer:   "Sí. Siguiendo el paso a paso y comenzando con los modelos iniciales, es totalmente posible.",
		},
		{
			Question: "¿Los patrones son fáciles de entender?",
			Answer:   "Sí. Incluyen explicación escrita y gráficos, además de una guía de símbolos y abreviaturas.",
		},
		{
			Question: "¿Puedo vender las bikinis que haga?",
			Answer:   "Sí. Puedes vender todo lo que produzcas con los modelos incluidos.",
		},
		{
			Question: "¿Cómo recibo el contenido?",
			Answer:   "Después del pago, recibes acceso inmediato por correo electrónico. Descargas y empiezas el mismo día.",
		},
		{
			Question: "¿Y si no me gusta o no es para mí?",
			Answer:   "Tienes 7 días de garantía. Si no estás satisfecha, puedes solicitar reembolso.",
		},
		{
			Question: "¿La comunidad tiene costo adicional?",
			Answer:   "No. Está incluida dentro del Plan Completo.",
		},
	},

	Footer: Footer{
		Brand:   "Ruta Bikini Emprendedora",
		Tagline: "Producto digital con acceso inmediato.",
		Disclaimers: []string{
			"Este sitio no está afiliado a Instagram ni a ninguna otra plataforma.",
			"Los resultados pueden variar según tu dedicación y aplicación.",
			"Todos los derechos reservados.",
		},
		Support: "Si tienes dudas, puedes escribirnos dentro de la comunidad o al correo de soporte.",
	},
}

// FAQList builds a fresh, fully collapsed accordion list from the page copy.
func (p Page) FAQList() (*faq.List, error) {
	return faq.NewList(p.FAQ)
}

