// Package studioweb serves the marketing site: it resolves each request path
// to a content slug, fetches the document from the content API and renders
// its widgets into a full HTML page.
//
// Page markup is supplied through ViewFuncs (DefaultViews uses the views
// package), and studioweb owns the handlers, middleware, contact form
// storage, sitemap and feed.
package studioweb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/gcstudio/studioweb/content"
	"github.com/gcstudio/studioweb/internal/observability"
	"github.com/gcstudio/studioweb/views"
)

// ViewFuncs holds the components the handlers render. Swap any of them with
// WithViews to restyle the site without touching handler logic.
type ViewFuncs struct {
	Page        func(site views.SiteConfig, meta views.PageMeta, path string, widgets g.Node) templ.Component
	Legal       func(site views.SiteConfig, meta views.PageMeta, path string, body g.Node) templ.Component
	NotFound    func(site views.SiteConfig) templ.Component
	ServerError func(site views.SiteConfig) templ.Component
}

// DefaultViews returns the stock components from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Page:        views.Page,
		Legal:       views.Legal,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central site application. It wires together the content
// client, store, handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Content *content.Client
	Index   *SlugIndex
	Views   ViewFuncs
	Logger  *zap.Logger
	Metrics *observability.Metrics

	registry       *prometheus.Registry
	contactLimiter *SubmissionLimiter
	legal          map[string]legalPage
	customRoutes   []func(*App)
	staticDir      string
	ownsStore      bool
	ready          bool
}

// New creates an App with the given configuration. Nothing is opened until
// Setup or Start.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup opens the store, builds the content client and registers middleware
// and routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("studioweb: SessionSecret is required")
	}

	if a.Logger == nil {
		l, err := observability.NewLogger(a.Config.LogLevel)
		if err != nil {
			return fmt.Errorf("studioweb: init logger: %w", err)
		}
		a.Logger = l
	}

	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	a.Metrics = observability.NewMetrics(a.registry)

	if a.Content == nil {
		a.Content = content.NewClient(a.Config.ContentAPIURL,
			content.WithLogger(a.Logger),
			content.WithMetrics(a.Metrics),
			content.WithTimeout(a.Config.ContentTimeout),
		)
	}

	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("studioweb: init store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}

	a.Index = NewSlugIndex(a.Content, a.Config.IndexCacheTTL)
	a.contactLimiter = NewSubmissionLimiter(5, 10*time.Minute)

	legal, err := loadLegalPages()
	if err != nil {
		return fmt.Errorf("studioweb: load legal pages: %w", err)
	}
	a.legal = legal

	a.setupMiddleware()
	a.setupRoutes()

	a.ready = true
	return nil
}

// Start sets the app up and serves on Config.Addr until ctx is cancelled,
// then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("site listening",
			zap.String("addr", a.Config.Addr),
			zap.String("content_api", a.Content.BaseURL()),
		)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Logger.Info("site shutting down")
	return a.Echo.Shutdown(shutdownCtx)
}

// FlushIndexOn drops the cached slug list every time sig fires, so the next
// sitemap request reloads it from the content API. It returns when ctx is
// done. Setup must have run first.
func (a *App) FlushIndexOn(ctx context.Context, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-sig:
			if !ok {
				return
			}
			a.Index.Invalidate()
			a.Logger.Info("slug index flushed", zap.Stringer("signal", s))
		}
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets first; a user static dir fills in the rest of /public.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded/public")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	if a.staticDir != "" {
		e.Static("/public", a.staticDir)
	}

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", handleHealthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	for slug := range a.legal {
		e.GET("/"+slug, a.handleLegal)
	}

	e.GET(contactPath, a.handlePage)
	e.POST(contactPath, a.handleContact)

	for _, fn := range a.customRoutes {
		fn(a)
	}

	e.GET("/", a.handleHome)
	e.GET("/*", a.handlePage)
}

// SiteView returns the subset of Config the views need.
func (a *App) SiteView() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil && a.ownsStore {
		if err := a.Store.Close(); err != nil {
			return err
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}
