package studioweb

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/views"
	"github.com/gcstudio/studioweb/widget"
)

// feedSlug is the content document whose blog listings make up the feed.
const feedSlug = "blogs"

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description,omitempty"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
}

// feedDateLayouts are the date formats authors use in blog cards.
var feedDateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"2 January 2006",
	time.RFC3339,
}

func parseFeedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// feedPosts collects the posts of every BlogList and HomeBlog widget in
// document order, skipping widgets whose payload does not decode.
func feedPosts(ws []widget.Descriptor) []widget.Blog {
	var posts []widget.Blog
	for _, d := range ws {
		switch widget.Kind(d.Type) {
		case widget.KindBlogList:
			var data widget.BlogListData
			if d.DecodeData(&data) == nil {
				posts = append(posts, data.Blogs...)
			}
		case widget.KindHomeBlog:
			var data widget.HomeBlogData
			if d.DecodeData(&data) == nil {
				posts = append(posts, data.Blogs...)
			}
		}
	}
	return posts
}

func (a *App) handleFeed(c echo.Context) error {
	var posts []widget.Blog
	if doc, ok := a.Content.Fetch(c.Request().Context(), feedSlug); ok {
		posts = feedPosts(doc.Widgets())
	} else {
		a.Logger.Warn("feed: blogs document unavailable")
	}
	return a.renderRSS(c, posts)
}

func (a *App) renderRSS(c echo.Context, posts []widget.Blog) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	seen := make(map[string]bool)
	for _, p := range posts {
		if p.Title == "" {
			continue
		}
		link := absoluteURL(base, p.Link)
		key := link + "\x00" + p.Title
		if seen[key] {
			continue
		}
		seen[key] = true
		pubDate := ""
		if t, ok := parseFeedDate(p.Date); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:      p.Title,
			Link:       link,
			Author:     p.Author,
			Categories: p.Tags,
			PubDate:    pubDate,
			GUID:       link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        views.BuildURL(base),
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		a.Logger.Debug("feed write failed", zap.Error(err))
		return nil
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}
