package views

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// component adapts a gomponents node to the templ.Component contract used
// by the handlers.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func property(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(g.Attr("property", name), h.Content(content))
}

func named(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(h.Name(name), h.Content(content))
}

func head(cfg SiteConfig, meta PageMeta) g.Node {
	title := PageTitle(cfg, meta.Title)
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		h.Meta(h.Name("theme-color"), h.Content("#000000")),
		h.TitleEl(g.Text(title)),
		named("description", meta.Description),
		g.If(meta.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
		g.If(meta.URL != "", h.Link(h.Rel("canonical"), h.Href(meta.URL))),

		property("og:title", meta.Title),
		property("og:description", meta.Description),
		property("og:type", ogType),
		property("og:url", meta.URL),
		property("og:site_name", cfg.Name),
		property("og:image", meta.Image),

		h.Meta(h.Name("twitter:card"), h.Content("summary_large_image")),
		named("twitter:title", meta.Title),
		named("twitter:description", meta.Description),
		named("twitter:image", meta.Image),

		h.Link(h.Rel("stylesheet"), h.Href("/public/site.css")),
		h.Link(h.Rel("alternate"), h.Type("application/rss+xml"), g.Attr("title", cfg.Name), h.Href("/feed.xml")),
		h.Script(h.Type("application/ld+json"), g.Raw(WebsiteJsonLD(cfg))),
	)
}

func header(cfg SiteConfig, current string) g.Node {
	return h.Header(h.Class("site-header"),
		h.Div(h.Class("container header-inner"),
			h.A(h.Class("logo"), h.Href("/"), g.Text(cfg.Name)),
			h.Nav(h.Class("site-nav"), g.Attr("aria-label", "Main"),
				h.Ul(g.Map(HeaderNav, func(l NavLink) g.Node {
					active := IsActive(l.Href, current)
					return h.Li(h.A(h.Href(l.Href),
						g.If(active, h.Class("active")),
						g.If(active, g.Attr("aria-current", "page")),
						g.Text(l.Title),
					))
				})),
			),
		),
	)
}

func footer(cfg SiteConfig) g.Node {
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container footer-inner"),
			h.Ul(h.Class("footer-nav"), g.Map(FooterNav, func(l NavLink) g.Node {
				return h.Li(h.A(h.Href(l.Href), g.Text(l.Title)))
			})),
			h.P(h.Class("copyright"),
				g.Text("© "+strconv.Itoa(time.Now().Year())+" "+cfg.Name+". All rights reserved."),
			),
		),
	)
}

// Layout wraps body in the document shell: head metadata, header navigation
// and footer. current is the request path used to highlight the nav.
func Layout(cfg SiteConfig, meta PageMeta, current string, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(h.Lang("en"),
			head(cfg, meta),
			h.Body(
				h.Div(h.Class("MainWrap"),
					header(cfg, current),
					g.Group(body),
					footer(cfg),
				),
			),
		),
	})
}
