// Package contentserver serves pre-generated content documents by slug.
//
// It is the companion backend for the site: a read-only table of JSON
// documents exposed under /api/general/<slug...> with permissive CORS.
package contentserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/internal/observability"
)

const (
	allowOrigin  = "*"
	allowHeaders = "Origin, X-Requested-With, Content-Type, Accept"
)

// Server answers content lookups from a fixed Table.
type Server struct {
	table    Table
	logger   *zap.Logger
	metrics  *observability.Metrics
	registry *prometheus.Registry
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.logger = observability.OrNop(l)
	}
}

// WithRegistry registers the server's metrics on reg and serves it on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// New builds a Server for table.
func New(table Table, opts ...Option) *Server {
	s := &Server{table: table, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = observability.NewMetrics(s.registry)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(cors)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.Get("/api/general/*", s.handleGeneral)
	r.Get("/api/index", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// cors allows any origin to read every response, including errors.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("remote_ip", r.RemoteAddr),
		)
	})
}

// normalizeSlug drops trailing slashes from the captured wildcard. The
// router has already separated the query string.
func normalizeSlug(captured string) string {
	return strings.TrimRight(captured, "/")
}

func (s *Server) handleGeneral(w http.ResponseWriter, r *http.Request) {
	slug := normalizeSlug(chi.URLParam(r, "*"))
	doc, ok := s.table.Lookup(slug)
	if slug == "" || !ok {
		s.observe(http.StatusNotFound)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.observe(http.StatusOK)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		s.logger.Debug("write document", zap.String("slug", slug), zap.Error(err))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.table.Slugs())
}

func (s *Server) observe(status int) {
	s.metrics.ContentServed.WithLabelValues(strconv.Itoa(status)).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("content server listening",
			zap.String("addr", addr),
			zap.Int("documents", len(s.table)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	s.logger.Info("content server shutting down")
	return srv.Shutdown(shutdownCtx)
}
