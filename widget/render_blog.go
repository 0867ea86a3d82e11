package widget

import (
	"context"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/gcstudio/studioweb/markdown"
)

// blogBatch is how many posts each "load more" step reveals.
const blogBatch = 8

func renderBlogList(ctx context.Context, d BlogListData) g.Node {
	if len(d.Blogs) == 0 {
		return h.Section(h.Class("blog-list"),
			h.Div(h.Class("container"), h.P(h.Class("empty-state"), g.Text("No blogs available"))))
	}

	pages := (len(d.Blogs) + blogBatch - 1) / blogBatch
	page := min(max(requestFrom(ctx).Page, 1), pages)
	shown := min(len(d.Blogs), page*blogBatch)
	blogs := d.Blogs[:shown]

	featured := blogs[0]
	var second g.Node
	if len(blogs) > 1 {
		second = h.Div(h.Class("blog-card-item"), blogCard(blogs[1]))
	}
	var rest []Blog
	if len(blogs) > 2 {
		rest = blogs[2:]
	}

	var more g.Node
	if shown < len(d.Blogs) {
		href := or(d.LoadMoreLink, "?page="+strconv.Itoa(page+1))
		more = h.Div(h.Class("blog-load-more"),
			h.A(h.Class("btn btn-primary"), h.Href(href), g.Text(or(d.LoadMoreText, "Load More Articles"))))
	}

	return h.Section(h.Class("blog-list"),
		h.Div(h.Class("container"),
			h.Div(h.Class("blog-list-top"),
				h.Article(h.Class("blog-card blog-card-featured"),
					h.A(h.Href(or(featured.Link, "#")),
						image(imagePath(featured.Image, "/images/blog1.png"), featured.Title, "blog-card-image"),
						h.P(h.Class("blog-card-meta"),
							h.Span(g.Text(featured.Author)),
							h.Span(g.Text("|")),
							h.Span(g.Text(featured.Date)),
						),
						h.H3(h.Class("blog-card-title"), g.Text(featured.Title)),
						tagList(featured.Tags),
					),
				),
				second,
			),
			g.If(len(rest) > 0, h.Div(h.Class("blog-grid"), g.Map(rest, func(b Blog) g.Node {
				return h.Div(h.Class("blog-card-item"), blogCard(b))
			}))),
			more,
		),
	)
}

var defaultSharePlatforms = []string{"facebook", "twitter", "linkedin", "copy"}

// shareLink returns the share URL for platform, or "" for platforms that
// have no link form (copy).
func shareLink(platform, pageURL, title string) string {
	u, t := url.QueryEscape(pageURL), url.QueryEscape(title)
	switch platform {
	case "facebook":
		return "https://www.facebook.com/sharer/sharer.php?u=" + u
	case "twitter":
		return "https://twitter.com/intent/tweet?url=" + u + "&text=" + t
	case "linkedin":
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + u
	case "whatsapp":
		return "https://wa.me/?text=" + url.QueryEscape(title+" "+pageURL)
	case "email":
		return "mailto:?subject=" + t + "&body=" + u
	}
	return ""
}

func renderBlogDetailBanner(ctx context.Context, d BlogDetailBannerData) g.Node {
	pageURL := requestFrom(ctx).URL
	tags := d.Tags
	if len(tags) == 0 {
		tags = d.Categories
	}
	platforms := d.SharePlatforms
	if platforms == nil {
		platforms = defaultSharePlatforms
	}

	share := make([]g.Node, 0, len(platforms))
	for _, p := range platforms {
		if p == "copy" {
			share = append(share, h.Li(h.Button(h.Type("button"), h.Class("share-copy"),
				h.Data("copy", pageURL), g.Text("Copy link"))))
			continue
		}
		link := shareLink(p, pageURL, d.Title)
		if link == "" {
			continue
		}
		share = append(share, h.Li(h.A(h.Class("share-"+p), h.Href(link),
			h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(p))))
	}

	return h.Section(h.Class("blog-detail-banner"),
		h.Div(h.Class("container"),
			g.If(d.BackLink != "", h.A(h.Class("back-link"), h.Href(d.BackLink),
				g.Text(or(d.BackLinkText, "Back To Blogs")))),
			h.H1(h.Class("blog-title"), g.Text(d.Title)),
			g.If(d.Description != "", h.P(h.Class("blog-description"), g.Text(d.Description))),
			g.If(len(tags) > 0, h.Div(h.Class("blog-categories"),
				g.If(d.CategoriesHeading != "", h.H4(g.Text(d.CategoriesHeading))),
				tagList(tags),
			)),
			button(d.ReadArticleText, d.ReadArticleLink, "btn-primary"),
			g.If(d.Author != "" || d.Date != "", h.P(h.Class("blog-meta"),
				g.If(d.Author != "", h.Span(h.Class("blog-author"), g.Text(d.Author))),
				g.If(d.Date != "", h.Span(h.Class("blog-date"), g.Text(d.Date))),
				g.If(d.ReadTime != "", h.Span(h.Class("blog-read-time"), g.Text(d.ReadTime))),
			)),
			g.If(len(share) > 0, h.Ul(h.Class("share-links"), g.Group(share))),
			image(imagePath(d.MainImage, "/images/blog1.png"), or(d.Title, "Blog Image"), "blog-main-image"),
		),
	)
}

func renderBlogDetailContent(d BlogDetailContentData) g.Node {
	if len(d.Sections) == 0 {
		return h.Section(h.Class("blog-detail-content"),
			h.Div(h.Class("container"), h.P(h.Class("empty-state"), g.Text("No data available"))))
	}
	return h.Section(h.Class("blog-detail-content"),
		h.Div(h.Class("container article-body"), g.Map(d.Sections, contentBlock)),
	)
}

// contentBlock renders one article block. Unknown block types render nothing.
func contentBlock(b ContentBlock) g.Node {
	switch b.Type {
	case "heading":
		switch b.Level {
		case 3:
			return h.H3(h.Class("content-item"), g.Text(b.Content))
		case 4:
			return h.H4(h.Class("content-item"), g.Text(b.Content))
		default:
			return h.H2(h.Class("content-item"), g.Text(b.Content))
		}
	case "paragraph":
		return h.Div(h.Class("content-item para"), markdown.Node(b.Content))
	case "list":
		return h.Ul(h.Class("content-item"), g.Map(b.Items, func(it string) g.Node {
			return h.Li(g.Text(it))
		}))
	case "image":
		src := imagePath(b.Image, "")
		if src == "" {
			return nil
		}
		return h.Figure(h.Class("content-item"), image(src, or(b.ImageAlt, "Blog content image"), "content-image"))
	}
	return nil
}
