package studioweb

import (
	"encoding/xml"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap lists the home page, every slug from the content index and
// the legal pages. If the index cannot be loaded the sitemap still lists
// the home and legal pages.
func (a *App) handleSitemap(c echo.Context) error {
	slugs, err := a.Index.Slugs(c.Request().Context())
	if err != nil {
		a.Logger.Warn("sitemap: content index unavailable", zap.Error(err))
	}
	return a.renderSitemap(c, slugs)
}

func (a *App) renderSitemap(c echo.Context, slugs []string) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: views.BuildURL(base)},
	}
	seen := map[string]bool{homeSlug: true}
	for _, s := range slugs {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, s)})
	}
	legal := make([]string, 0, len(a.legal))
	for slug := range a.legal {
		if !seen[slug] {
			legal = append(legal, slug)
		}
	}
	sort.Strings(legal)
	for _, slug := range legal {
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, slug)})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		a.Logger.Debug("sitemap write failed", zap.Error(err))
		return nil
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
