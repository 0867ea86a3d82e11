package studioweb

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/content"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`        // Site name (default "GC Studio")
	URL         string `env:"SITE_URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `env:"SITE_DESCRIPTION"` // Site description for RSS and meta tags

	Addr         string `env:"SITE_ADDR"`     // Listen address (default ":3000")
	DatabasePath string `env:"DATABASE_PATH"` // SQLite path (default "data/studioweb.db")

	ContentAPIURL  string        `env:"CONTENT_API_URL"` // Content API base (default "http://localhost:8080/")
	ContentTimeout time.Duration `env:"CONTENT_TIMEOUT"` // Per-fetch timeout (default 10s)
	IndexCacheTTL  time.Duration `env:"INDEX_CACHE_TTL"` // Sitemap slug cache TTL (default 5min)

	SessionSecret string `env:"SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `env:"COOKIE_SECURE"`  // Set true for HTTPS

	LogLevel string `env:"LOG_LEVEL"` // debug, info, warn, error (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "GC Studio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/studioweb.db"
	}
	if c.ContentAPIURL == "" {
		c.ContentAPIURL = "http://localhost:8080/"
	}
	if c.ContentTimeout == 0 {
		c.ContentTimeout = 10 * time.Second
	}
	if c.IndexCacheTTL == 0 {
		c.IndexCacheTTL = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadSiteConfig reads SiteConfig from the environment after loading the
// given .env file. An empty envFile tries ".env" and ignores its absence.
func LoadSiteConfig(envFile string) (SiteConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("studioweb: load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("studioweb: parse config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the application logger (default: zap JSON logger at
// Config.LogLevel).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithContentClient replaces the content API client built from Config.
func WithContentClient(c *content.Client) Option {
	return func(a *App) {
		a.Content = c
	}
}

// WithRegistry registers the site metrics on reg and serves it on /metrics
// (default: a fresh registry).
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) {
		a.registry = reg
	}
}

// WithStore uses an already opened store instead of opening Config.DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithViews overrides the default page components.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// Custom routes are added before the catch-all page route.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir serves an extra directory of user-owned assets under
// /public, after the embedded ones.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
