package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page renders a content page. widgets is the already dispatched widget
// sequence; an empty sequence yields an empty <main>.
func Page(cfg SiteConfig, meta PageMeta, current string, widgets g.Node) templ.Component {
	class := "page"
	if current == "/" || current == "" {
		class = "isHome"
	}
	return component(Layout(cfg, meta, current, h.Main(h.Class(class), widgets)))
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       "Page Not Found",
		Description: "The page you are looking for does not exist.",
		NoIndex:     true,
	}
	return component(Layout(cfg, meta, "",
		h.Main(h.Class("error-page"),
			h.Div(h.Class("container"),
				h.H1(h.Class("error-code"), g.Text("404")),
				h.H2(g.Text("Page Not Found")),
				h.P(g.Text("Sorry, we couldn't find the page you're looking for. The page might have been moved, deleted, or doesn't exist.")),
				h.A(h.Class("btn btn-primary"), h.Href("/"), g.Text("Back to Home")),
			),
		),
	))
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Something Went Wrong", NoIndex: true}
	return component(Layout(cfg, meta, "",
		h.Main(h.Class("error-page"),
			h.Div(h.Class("container"),
				h.H1(h.Class("error-code"), g.Text("500")),
				h.H2(g.Text("Something Went Wrong")),
				h.P(g.Text("An unexpected error occurred. Please try again in a moment.")),
				h.A(h.Class("btn btn-primary"), h.Href("/"), g.Text("Back to Home")),
			),
		),
	))
}

// Legal renders a static policy page from pre-rendered, sanitized HTML.
func Legal(cfg SiteConfig, meta PageMeta, current string, body g.Node) templ.Component {
	return component(Layout(cfg, meta, current,
		h.Main(h.Class("legal-page"),
			h.Div(h.Class("container prose"),
				h.A(h.Class("back-link"), h.Href("/"), g.Text("Back to Home")),
				body,
			),
		),
	))
}
