package studioweb

import (
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/gcstudio/studioweb/markdown"
	"github.com/gcstudio/studioweb/views"
)

// legalPage is a static policy page rendered once from embedded markdown.
type legalPage struct {
	Title       string
	Description string
	Body        g.Node
}

var legalMeta = map[string]struct{ title, description string }{
	"privacy-policy": {
		"Privacy Policy",
		"Learn how we collect, use, and protect your personal information in our privacy policy.",
	},
	"terms-and-conditions": {
		"Terms & Conditions",
		"Read the terms and conditions that govern the use of our website and services.",
	},
}

// loadLegalPages renders every embedded/legal/*.md file. The file name
// without extension is the route slug.
func loadLegalPages() (map[string]legalPage, error) {
	files, err := fs.Glob(EmbeddedAssets, "embedded/legal/*.md")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]legalPage, len(files))
	for _, f := range files {
		src, err := fs.ReadFile(EmbeddedAssets, f)
		if err != nil {
			return nil, err
		}
		slug := strings.TrimSuffix(path.Base(f), ".md")
		meta := legalMeta[slug]
		if meta.title == "" {
			meta.title = slug
		}
		pages[slug] = legalPage{
			Title:       meta.title,
			Description: meta.description,
			Body:        markdown.Node(string(src)),
		}
	}
	return pages, nil
}

func (a *App) handleLegal(c echo.Context) error {
	slug := strings.TrimPrefix(c.Request().URL.Path, "/")
	page, ok := a.legal[slug]
	if !ok {
		return a.renderNotFound(c)
	}
	meta := views.PageMeta{
		Title:       page.Title,
		Description: page.Description,
		URL:         views.BuildURL(a.Config.URL, slug),
	}
	return Render(c, a.Views.Legal(a.SiteView(), meta, c.Request().URL.Path, page.Body))
}
