package widget

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func renderHomeBanner(d HomeBannerData) g.Node {
	if len(d.BannerSlides) == 0 {
		return nil
	}
	return h.Section(h.Class("hero-wrapper"),
		h.Div(h.Class("hero-slides"),
			g.Map(d.BannerSlides, func(s Slide) g.Node {
				bg := imagePath(s.BackgroundImage, "")
				return h.Div(h.Class("hero-slide"),
					g.If(bg != "", h.Style("background-image: url("+bg+")")),
					h.Div(h.Class("hero-content container"),
						h.H2(h.Class("hero-title"), g.Text(s.Title)),
						button("Explore", s.Link, "btn-primary"),
					),
				)
			}),
		),
		h.Div(h.Class("hero-pagination")),
	)
}

func renderTwoColumnSection(d TwoColumnSectionData) g.Node {
	return h.Section(h.Class("two-column-section"),
		h.Div(h.Class("container two-column-grid"),
			g.Map(d.Items, func(it TitledText) g.Node {
				return h.Div(h.Class("two-column-item"),
					g.If(it.Title != "", h.H2(h.Class("stickytitle"), g.Text(it.Title))),
					g.If(it.Text != "", h.P(g.Text(it.Text))),
				)
			}),
		),
	)
}

func renderCTASection(d CTASectionData) g.Node {
	bg := or(d.BackgroundColor, "bg-black")
	fg := or(d.TextColor, "text-white")
	return h.Section(h.Class("cta-section "+bg),
		h.Div(h.Class("container cta-grid"),
			h.H2(h.Class("cta-title "+fg), g.Text(or(d.Title, "Let's Work Together"))),
			h.Div(h.Class("cta-body"),
				g.If(d.Subtitle != "", h.P(h.Class("cta-subtitle "+fg), g.Text(d.Subtitle))),
				button(or(d.ButtonText, "Get Started"), or(d.ButtonLink, "/contact"), "btn-secondary"),
			),
		),
	)
}

func renderHomeProject(d HomeProjectData) g.Node {
	return h.Section(h.Class("home-project"),
		h.Div(h.Class("container"),
			sectionHeader(d.Label, d.Title, d.Description),
			h.Div(h.Class("project-grid"), g.Map(d.Projects, projectCard)),
			button(d.ButtonText, or(d.ButtonLink, "/projects"), "btn-primary"),
		),
	)
}

func renderHomeBlog(d HomeBlogData) g.Node {
	return h.Section(h.Class("home-blog"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "Blogs"),
				or(d.Title, "Bringing Ideas To Life Through Design"),
				or(d.Description, "We collaborate with ambitious clients to create digital experiences that inspire, engage, and drive meaningful results."),
			),
			h.Div(h.Class("blog-grid"), g.Map(d.Blogs, blogCard)),
			button(or(d.ButtonText, "View All Blogs"), or(d.ButtonLink, "/blogs"), "btn-primary"),
		),
	)
}

func renderHomeService(d HomeServiceData) g.Node {
	items := d.ServicesItems
	if len(items) == 0 {
		items = d.ServicesItemsAlt
	}
	featuredTitle := or(d.ServiceTitle, or(d.ServiceTitleAlt, "Brand & Identity Design"))
	featuredDesc := or(d.ServiceDescription, or(d.ServiceDescriptionAlt,
		"We create memorable brand identities that resonate with your audience and stand out in the market."))

	return h.Section(h.Class("home-service"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "Services"),
				or(d.Title, "Design, Build, And Scale With Us"),
				or(d.Description, "We help ambitious businesses move forward with services designed to attract, engage, and convert your audience."),
			),
			h.Div(h.Class("service-grid"),
				g.Map(d.Services, func(s Service) g.Node {
					link := s.Link
					if link == "" && s.Slug != "" {
						link = "/services/" + s.Slug
					}
					return h.Article(h.Class("service-card"),
						image(imagePath(s.Image, ""), s.Title, "service-card-image"),
						h.H3(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
						button("Learn More", link, "btn-link"),
					)
				}),
			),
			h.Div(h.Class("service-featured"),
				h.H3(g.Text(featuredTitle)),
				h.P(g.Text(featuredDesc)),
				g.If(len(items) > 0, h.Ul(g.Map(items, func(it NamedItem) g.Node {
					return h.Li(g.Text(it.Name))
				}))),
			),
			h.Div(h.Class("service-cta"),
				image(imagePath(d.CTAImage, "/images/cta-cube.png"), "", "service-cta-image"),
				h.H3(g.Text(or(d.CTATitle, "Ready To Elevate Your Brand?"))),
				h.P(g.Text(or(d.CTADescription, "Let's turn your ideas into impactful designs. Book a call today and start building something remarkable."))),
				button(or(d.CTAButtonText, "Book A Call"), or(d.CTAButtonLink, "/contact"), "btn-primary"),
			),
		),
	)
}

func renderHomeProcess(d HomeProcessData) g.Node {
	return h.Section(h.Class("home-process"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "Our Process"),
				or(d.Title, "Turning Ideas Into Meaningful Experiences"),
				or(d.Description, "Every step of our process is built to align with your goals and create measurable impact."),
			),
			h.Ol(h.Class("process-steps"),
				g.Map(indexed(d.Steps), func(s indexedStep) g.Node {
					return h.Li(h.Class("process-step"),
						h.Span(h.Class("process-step-number"), g.Text(or(s.Number, stepNumber(s.index)))),
						image(imagePath(s.Icon, ""), "", "process-step-icon"),
						h.H3(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
					)
				}),
			),
		),
	)
}

type indexedStep struct {
	ProcessStep
	index int
}

func indexed(steps []ProcessStep) []indexedStep {
	out := make([]indexedStep, len(steps))
	for i, s := range steps {
		out[i] = indexedStep{ProcessStep: s, index: i}
	}
	return out
}

// stepNumber formats a zero-based index as "01", "02", ...
func stepNumber(i int) string {
	n := strconv.Itoa(i + 1)
	if len(n) < 2 {
		n = "0" + n
	}
	return n
}
