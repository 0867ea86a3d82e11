package widget

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/gcstudio/studioweb/markdown"
)

var (
	defaultAboutItems = []AboutItem{
		{Text: "Simplicity The Biggest Idea A Looked"},
		{Text: "Mastering The Art Of Conversion"},
		{Text: "Keeping Advertising Standards High"},
	}
	defaultClientImages = []string{
		"/assets/img/bg-img/5.jpg",
		"/assets/img/bg-img/4.jpg",
		"/assets/img/bg-img/3.jpg",
		"/assets/img/bg-img/2.jpg",
	}
	defaultPartners = []Partner{
		{Image: "/assets/img/partner-img/1.png", Alt: "Partner 1"},
		{Image: "/assets/img/partner-img/2.png", Alt: "Partner 2"},
		{Image: "/assets/img/partner-img/3.png", Alt: "Partner 3"},
		{Image: "/assets/img/partner-img/4.png", Alt: "Partner 4"},
		{Image: "/assets/img/partner-img/3.png", Alt: "Partner 5"},
		{Image: "/assets/img/partner-img/5.png", Alt: "Partner 6"},
	}
)

// Lists fall back to their defaults only when the key is absent; an
// authored empty list stays empty.
func renderAboutSection(d AboutSectionData) g.Node {
	items := d.AboutItems
	if items == nil {
		items = defaultAboutItems
	}
	clients := d.ClientImages
	if clients == nil {
		clients = defaultClientImages
	}
	partners := d.Partners
	if partners == nil {
		partners = defaultPartners
	}

	partnerNodes := make([]g.Node, 0, len(partners))
	for i, p := range partners {
		partnerNodes = append(partnerNodes, h.Li(h.Class("partner"),
			image(imagePath(p.Image, "/assets/img/partner-img/1.png"), or(p.Alt, "Partner "+strconv.Itoa(i+1)), "partner-logo"),
		))
	}

	return h.Section(h.Class("about-section"),
		h.Div(h.Class("container about-grid"),
			h.Div(h.Class("about-copy"),
				h.H2(h.Class("section-title"), g.Text(or(d.Title, "Passionate About Quality Design"))),
				h.P(h.Class("section-description"), g.Text(or(d.Description,
					"If you ask our clients what it's like working with 36, they'll talk about how much we care about their success. For us, real relationships fuel real success."))),
				h.Ul(h.Class("about-items"), g.Map(items, func(it AboutItem) g.Node {
					return h.Li(h.Class("about-item"), g.Text(it.Text))
				})),
				button(or(d.ButtonText, "MORE ABOUT US"), or(d.ButtonLink, "/about"), "btn-primary"),
			),
			image(imagePath(d.MainImage, "/images/6.jpg"), "", "about-main-image"),
			h.Div(h.Class("about-stats"),
				h.Div(h.Class("about-clients"),
					h.Div(h.Class("client-avatars"), g.Map(clients, func(src string) g.Node {
						return image(imagePath(src, ""), "", "client-avatar")
					})),
					h.Strong(g.Text(or(d.ClientCount, "2566+"))),
					h.Span(g.Text(or(d.ClientText, "More Then Clients Global Reviews"))),
				),
				h.Div(h.Class("about-partners"),
					h.Strong(g.Text(or(d.PartnerCount, "2337+"))),
					h.Span(g.Text(or(d.PartnerText, "Our Trusted & Valuable Clients"))),
				),
			),
			h.Ul(h.Class("partner-list"), g.Group(partnerNodes)),
		),
	)
}

func renderAboutGrid(d AboutGridData) g.Node {
	return h.Section(h.Class("about-grid-section"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "About Us"),
				or(d.Title, "Driven By Creativity, Committed To Excellence."),
				or(d.Description, "Our team blends strategy, design, and technology to craft solutions that not only look great but also deliver measurable results."),
			),
			h.Div(h.Class("about-grid-images"),
				image(imagePath(d.Images.TopLeft, ""), "", "about-grid-top-left"),
				image(imagePath(d.Images.BottomLeft, ""), "", "about-grid-bottom-left"),
				image(imagePath(d.Images.Right, ""), "", "about-grid-right"),
			),
		),
	)
}

func renderAboutTeam(d AboutTeamData) g.Node {
	return h.Section(h.Class("about-team"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "Meet The Team"),
				or(d.Title, "The People Who Make It Happen"),
				or(d.Description, "We believe the best work comes from teamwork. Our diverse team works closely to turn concepts into reality."),
			),
			h.Div(h.Class("team-grid"), g.Map(d.Members, func(m TeamMember) g.Node {
				return h.Article(h.Class("team-card"),
					image(imagePath(m.Image, ""), m.Name, "team-card-image"),
					h.H3(g.Text(m.Name)),
					g.If(m.Role != "", h.P(h.Class("team-card-role"), g.Text(m.Role))),
					g.If(m.LinkedIn != "", h.A(h.Class("team-card-linkedin"), h.Href(m.LinkedIn),
						h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("LinkedIn"))),
				)
			})),
		),
	)
}

func renderImpactStats(d ImpactStatsData) g.Node {
	return h.Section(h.Class("impact-stats"),
		h.Div(h.Class("container"),
			sectionHeader(or(d.Label, "Impact"), or(d.Title, "Elevating Brands With Measurable Impact"), ""),
			h.Dl(h.Class("stats-grid"), g.Map(d.Stats, func(s StatItem) g.Node {
				return h.Div(h.Class("stat"),
					h.Dt(h.Class("stat-value"), g.Text(s.Value)),
					h.Dd(h.Class("stat-label"), g.Text(s.Label)),
					g.If(s.Description != "", h.Dd(h.Class("stat-description"), g.Text(s.Description))),
				)
			})),
		),
	)
}

type crumb struct {
	Label string
	Href  string
}

// breadcrumbs builds Home plus one crumb per path segment. Segment labels
// are title-cased with hyphens turned into spaces.
func breadcrumbs(path string) []crumb {
	out := []crumb{{Label: "Home", Href: "/"}}
	cur := ""
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		cur += "/" + seg
		words := strings.Split(seg, "-")
		for i, w := range words {
			if r, size := utf8.DecodeRuneInString(w); r != utf8.RuneError {
				words[i] = string(unicode.ToUpper(r)) + w[size:]
			}
		}
		out = append(out, crumb{Label: strings.Join(words, " "), Href: cur})
	}
	return out
}

func renderInnerBanner(ctx context.Context, d InnerBannerData) g.Node {
	crumbs := breadcrumbs(requestFrom(ctx).Path)
	bg := imagePath(d.BackgroundImage, "")
	return h.Section(h.Class("inner-banner"),
		g.If(bg != "", h.Style("background-image: url("+bg+")")),
		h.Div(h.Class("container"),
			h.H1(h.Class("inner-banner-title"), g.Text(or(d.Title, "Page Title"))),
			h.Nav(h.Class("breadcrumbs"), g.Attr("aria-label", "Breadcrumb"),
				h.Ol(g.Map(indexedCrumbs(crumbs), func(c indexedCrumb) g.Node {
					if c.last {
						return h.Li(h.Span(g.Attr("aria-current", "page"), g.Text(c.Label)))
					}
					return h.Li(h.A(h.Href(c.Href), g.Text(c.Label)))
				})),
			),
		),
	)
}

type indexedCrumb struct {
	crumb
	last bool
}

func indexedCrumbs(cs []crumb) []indexedCrumb {
	out := make([]indexedCrumb, len(cs))
	for i, c := range cs {
		out[i] = indexedCrumb{crumb: c, last: i == len(cs)-1}
	}
	return out
}

func renderFAQSection(d FAQSectionData) g.Node {
	faqs := make([]g.Node, 0, len(d.FAQs))
	for i, f := range d.FAQs {
		faqs = append(faqs, h.Details(h.Class("faq-item"),
			g.If(i == 0, g.Attr("open")),
			h.Summary(h.Class("faq-question"), g.Text(f.Question)),
			h.Div(h.Class("faq-answer"), markdown.Node(f.Answer)),
		))
	}

	return h.Section(h.Class("faq-section"),
		h.Div(h.Class("container faq-grid"),
			h.Div(h.Class("faq-intro"),
				sectionHeader(
					or(d.Label, "FAQ"),
					or(d.Title, "Everything You Need To Know"),
					or(d.Description, "Explore our FAQs for clarity on our approach, services, and results. And if you don't see your answer, we're just a call away."),
				),
				h.Div(h.Class("faq-cta"),
					h.H3(g.Text(or(d.CTATitle, "Didn't Find Your Answer?"))),
					h.P(g.Text(or(d.CTADescription, "We'd love to help. Book a call with our team and get answers tailored to your specific needs."))),
					button(or(d.CTAButtonText, "Contact Us"), or(d.CTAButtonLink, "/contact"), "btn-primary"),
				),
			),
			h.Div(h.Class("faq-list"), g.Group(faqs)),
		),
	)
}
