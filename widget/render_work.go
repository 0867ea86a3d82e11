package widget

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func renderProjectList(d ProjectListData) g.Node {
	var body g.Node
	if len(d.Projects) > 0 {
		body = h.Div(h.Class("project-grid"), g.Map(d.Projects, projectCard))
	} else {
		body = h.P(h.Class("empty-state"), g.Text("No projects available"))
	}

	return h.Section(h.Class("project-list"),
		h.Div(h.Class("container"),
			h.Div(h.Class("section-header"),
				eyebrow(d.Label),
				h.H2(h.Class("section-title"),
					g.Text(or(d.Title, "Projects That Speak For")),
					g.If(d.TitleLine2 != "", g.Group([]g.Node{h.Br(), g.Text(d.TitleLine2)})),
				),
				g.If(d.Description != "", h.P(h.Class("section-description"), g.Text(d.Description))),
			),
			body,
		),
	)
}

func renderWorkDetailBanner(d WorkDetailBannerData) g.Node {
	var visit g.Node
	if d.VisitWebsiteLink != "" {
		visit = h.A(h.Class("btn btn-primary"), h.Href(d.VisitWebsiteLink),
			h.Target("_blank"), h.Rel("noopener noreferrer"),
			g.Text(or(d.VisitWebsiteText, "Visit Website")))
	}

	return h.Section(h.Class("work-detail-banner"),
		h.Div(h.Class("container"),
			g.If(d.BackLink != "", h.A(h.Class("back-link"), h.Href(d.BackLink),
				g.Text(or(d.BackLinkText, "Back To Projects")))),
			h.H1(h.Class("work-title"), g.Text(d.Title)),
			g.If(d.Description != "", h.P(h.Class("work-description"), g.Text(d.Description))),
			visit,
			g.If(len(d.Services) > 0, h.Div(h.Class("work-services"),
				h.H4(g.Text(or(d.ServicesHeading, "Services Provided"))),
				tagList(d.Services),
			)),
			image(imagePath(d.MainImage, ""), or(d.Title, "Project Image"), "work-main-image"),
			g.If(d.Client != "" || d.Year != "" || d.Timeline != "", h.Dl(h.Class("work-meta"),
				metaEntry("Client", d.Client),
				metaEntry("Year", d.Year),
				metaEntry("Timeline", d.Timeline),
			)),
		),
	)
}

func metaEntry(label, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Div(h.Class("meta-entry"),
		h.Dt(g.Text(label)),
		h.Dd(g.Text(value)),
	)
}

func renderWorkCaseStudy(d WorkCaseStudyData) g.Node {
	if len(d.Sections) == 0 {
		return nil
	}
	return h.Section(h.Class("work-case-study"),
		h.Div(h.Class("container"), g.Map(d.Sections, caseStudySection)),
	)
}

func caseStudySection(s CaseStudySection) g.Node {
	return h.Div(h.Class("case-section"),
		eyebrow(s.Heading),
		g.If(s.Title != "", h.H2(h.Class("case-title"), g.Text(s.Title))),
		g.If(s.Description != "", h.P(h.Class("case-description"), g.Text(s.Description))),
		caseImages(s),
	)
}

// caseImages lays out a section's images. "left-one-right-two" needs at
// least three images; otherwise the images go into a two-column grid.
func caseImages(s CaseStudySection) g.Node {
	switch {
	case s.ImageLayout == "left-one-right-two" && len(s.Images) >= 3:
		return h.Div(h.Class("case-images case-images-left-one-right-two"),
			image(imagePath(s.Images[0], ""), s.Heading+" 1", "case-image-main"),
			h.Div(h.Class("case-images-stack"),
				image(imagePath(s.Images[1], ""), s.Heading+" 2", "case-image"),
				image(imagePath(s.Images[2], ""), s.Heading+" 3", "case-image"),
			),
		)
	case len(s.Images) > 0:
		nodes := make([]g.Node, 0, len(s.Images))
		for i, src := range s.Images {
			nodes = append(nodes, image(imagePath(src, ""), s.Heading+" "+strconv.Itoa(i+1), "case-image"))
		}
		return h.Div(h.Class("case-images case-images-grid"), g.Group(nodes))
	case s.Image != "":
		return h.Div(h.Class("case-images"), image(imagePath(s.Image, ""), s.Heading, "case-image-main"))
	}
	return nil
}
