package studioweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/content"
	"github.com/gcstudio/studioweb/internal/observability"
	"github.com/gcstudio/studioweb/views"
	"github.com/gcstudio/studioweb/widget"
)

const homeSlug = "home"

func (a *App) handleHome(c echo.Context) error {
	return a.renderSlug(c, homeSlug)
}

func (a *App) handlePage(c echo.Context) error {
	slug, ok := content.ResolveSlug(content.SegmentsFromPath(c.Request().URL.Path))
	if !ok {
		return a.renderNotFound(c)
	}
	return a.renderSlug(c, slug)
}

// renderSlug fetches the document for slug and renders its widgets. Any
// fetch failure is a 404.
func (a *App) renderSlug(c echo.Context, slug string) error {
	ctx := c.Request().Context()
	doc, ok := a.Content.Fetch(ctx, slug)
	if !ok {
		return a.renderNotFound(c)
	}

	path := c.Request().URL.Path
	pageURL := views.BuildURL(a.Config.URL)
	if slug != homeSlug {
		pageURL = views.BuildURL(a.Config.URL, slug)
	}

	kind, msg := popFlash(c)
	listPage, _ := strconv.Atoi(c.QueryParam("page"))
	ctx = widget.WithRequest(ctx, widget.RequestInfo{
		Path:      path,
		URL:       pageURL,
		Page:      listPage,
		CSRFToken: CsrfToken(c),
		Flash:     msg,
		FlashKind: string(kind),
	})

	rendered := widget.RenderAll(ctx, doc.Widgets())
	a.observeWidgets(rendered)

	md := doc.Metadata()
	meta := views.PageMeta{
		Title:       md.Title,
		Description: md.Description,
		Image:       md.Image,
		URL:         pageURL,
	}
	return Render(c, a.Views.Page(a.SiteView(), meta, path, widget.Group(rendered)))
}

func (a *App) observeWidgets(rs []widget.Rendered) {
	for _, r := range rs {
		typ := r.Type
		if !widget.Known(typ) {
			typ = "unknown"
		}
		outcome := observability.OutcomeRendered
		if r.Fallback {
			outcome = observability.OutcomeFallback
			a.Logger.Debug("widget fallback", zap.String("widget_type", r.Type), zap.String("key", r.Key))
		}
		a.Metrics.WidgetRenders.WithLabelValues(typ, outcome).Inc()
	}
}

func (a *App) renderNotFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.SiteView()))
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + views.BuildURL(a.Config.URL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError(a.SiteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
