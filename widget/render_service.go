package widget

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/gcstudio/studioweb/markdown"
)

func renderServiceList(d ServiceListData) g.Node {
	if len(d.Services) == 0 {
		return nil
	}
	rows := make([]g.Node, 0, len(d.Services))
	for i, s := range d.Services {
		side := "service-row-media-right"
		if i%2 == 1 {
			side = "service-row-media-left"
		}
		rows = append(rows, h.Div(h.Class("service-row "+side),
			serviceContent(s),
			serviceMedia(s),
		))
	}
	return h.Section(h.Class("service-list"), h.Div(h.Class("container"), g.Group(rows)))
}

// serviceContent splits the title so the highlighted word (the first word
// unless one is authored) can be styled apart from the rest.
func serviceContent(s ServiceOffering) g.Node {
	words := strings.Fields(s.Title)
	highlight := s.HighlightedWord
	if highlight == "" && len(words) > 0 {
		highlight = words[0]
	}
	var rest string
	if len(words) > 1 {
		rest = strings.Join(words[1:], " ")
	}

	return h.Div(h.Class("service-content"),
		h.H2(
			h.Span(h.Class("service-highlight"), g.Text(highlight)),
			g.If(rest != "", h.Span(h.Class("service-title-rest"), g.Text(" "+rest))),
		),
		h.Ul(h.Class("service-items"), g.Map(s.Services, func(it NamedItem) g.Node {
			return h.Li(g.Text(it.Name))
		})),
		g.If(s.CTAText != "", h.A(h.Class("btn-link"), h.Href(or(s.CTALink, "#")), g.Text(s.CTAText))),
	)
}

func serviceMedia(s ServiceOffering) g.Node {
	switch {
	case s.Video != "":
		return h.Div(h.Class("service-media"),
			h.Video(g.Attr("autoplay"), g.Attr("loop"), g.Attr("muted"), g.Attr("playsinline"), g.Attr("preload", "auto"),
				h.Source(h.Src(s.Video), h.Type("video/"+or(s.VideoType, "mp4"))),
				g.Text("Your browser does not support the video tag."),
			),
		)
	case s.Image != "":
		return h.Div(h.Class("service-media"), image(imagePath(s.Image, ""), s.Title, "service-image"))
	}
	return nil
}

// renderServiceDetailAbout renders every tab panel; the first one is
// visible and the rest are hidden until a tab is selected.
func renderServiceDetailAbout(d ServiceDetailAboutData) g.Node {
	if len(d.Tabs) == 0 {
		return nil
	}
	tabs := make([]g.Node, 0, len(d.Tabs))
	panels := make([]g.Node, 0, len(d.Tabs))
	for i, t := range d.Tabs {
		id := strconv.Itoa(i)
		selected := "false"
		if i == 0 {
			selected = "true"
		}
		tabs = append(tabs, h.Button(h.Type("button"), h.Class("tab"), h.ID("tab-"+id),
			g.Attr("role", "tab"), g.Attr("aria-selected", selected), g.Attr("aria-controls", "tab-panel-"+id),
			g.Text(t.Label),
		))
		c := t.Content
		panels = append(panels, h.Div(h.Class("tab-panel"), h.ID("tab-panel-"+id),
			g.Attr("role", "tabpanel"), g.Attr("aria-labelledby", "tab-"+id),
			g.If(i > 0, g.Attr("hidden")),
			g.If(c.Title != "", h.H3(g.Text(c.Title))),
			g.If(c.Description != "", h.P(h.Class("tab-description"), g.Text(c.Description))),
			markdown.Node(c.Content),
			g.If(len(c.Items) > 0, h.Ul(h.Class("tab-items"), g.Map(c.Items, func(it string) g.Node {
				return h.Li(g.Text(it))
			}))),
		))
	}
	return h.Section(h.Class("service-detail-about"),
		h.Div(h.Class("container service-detail-grid"),
			h.Nav(h.Class("tab-list"), g.Attr("role", "tablist"), g.Group(tabs)),
			h.Div(h.Class("tab-panels"), g.Group(panels)),
		),
	)
}
