package widget

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// or returns v, or def when v is blank.
func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func isExternal(p string) bool {
	p = strings.TrimSpace(p)
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// imagePath normalizes an authored image reference: external URLs pass
// through, local paths get a leading slash, blank values become fallback.
func imagePath(p, fallback string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return fallback
	}
	if isExternal(p) || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func eyebrow(label string) g.Node {
	if label == "" {
		return nil
	}
	return h.Div(h.Class("eyebrow"),
		h.Span(h.Class("eyebrow-bar"), g.Text("|")),
		h.Span(h.Class("eyebrow-label"), g.Text(label)),
		h.Span(h.Class("eyebrow-bar"), g.Text("|")),
	)
}

// sectionHeader is the label / title / description block most sections open with.
func sectionHeader(label, title, description string) g.Node {
	return h.Div(h.Class("section-header"),
		eyebrow(label),
		g.If(title != "", h.H2(h.Class("section-title"), g.Text(title))),
		g.If(description != "", h.P(h.Class("section-description"), g.Text(description))),
	)
}

func button(text, href, class string) g.Node {
	if text == "" || href == "" {
		return nil
	}
	return h.A(h.Class("btn "+class), h.Href(href), g.Text(text))
}

func image(src, alt, class string) g.Node {
	if src == "" {
		return nil
	}
	return h.Img(h.Class(class), h.Src(src), h.Alt(alt), g.Attr("loading", "lazy"))
}

func tagList(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return h.Ul(h.Class("tag-list"), g.Map(tags, func(t string) g.Node {
		return h.Li(h.Class("tag"), g.Text(t))
	}))
}

func projectCard(p Project) g.Node {
	return h.Article(h.Class("project-card"),
		h.A(h.Href(or(p.Link, "#")),
			image(imagePath(p.Image, ""), p.Title, "project-card-image"),
			h.Div(h.Class("project-card-body"),
				g.If(p.Year != "", h.Span(h.Class("project-card-year"), g.Text(p.Year))),
				h.H3(h.Class("project-card-title"), g.Text(p.Title)),
				tagList(p.Tags),
			),
		),
	)
}

func blogCard(b Blog) g.Node {
	return h.Article(h.Class("blog-card"),
		h.A(h.Href(or(b.Link, "#")),
			image(imagePath(b.Image, ""), b.Title, "blog-card-image"),
			h.Div(h.Class("blog-card-body"),
				h.P(h.Class("blog-card-meta"),
					g.If(b.Author != "", h.Span(g.Text(b.Author))),
					g.If(b.Date != "", h.Span(g.Text(b.Date))),
				),
				h.H3(h.Class("blog-card-title"), g.Text(b.Title)),
				tagList(b.Tags),
			),
		),
	)
}
