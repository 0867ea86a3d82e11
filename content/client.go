// Package content resolves route paths to content keys and fetches content
// documents from the content API.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/internal/observability"
)

const (
	generalPath    = "api/general/"
	indexPath      = "api/index"
	defaultTimeout = 10 * time.Second
)

var (
	// ErrTransport wraps network-level failures (DNS, refused, timeout, cancel).
	ErrTransport = errors.New("content: transport error")
	// ErrDecode wraps response bodies that are not a valid document.
	ErrDecode = errors.New("content: malformed response body")
)

// StatusError reports a non-2xx response from the content API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content: unexpected status %d", e.Code)
}

// Client fetches documents from a content API rooted at a base URL.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *zap.Logger
	metrics *observability.Metrics
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used to report discarded fetch failures.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = observability.OrNop(l)
	}
}

// WithMetrics records fetch outcomes on m.
func WithMetrics(m *observability.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTimeout bounds each request. Zero keeps the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHTTPClient swaps the underlying transport client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).SetTimeout(hc.Timeout)
	}
}

// NewClient returns a Client for baseURL. A trailing slash is added when
// missing so that keys are appended as "<base>/api/general/<key>".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		http:    resty.New().SetTimeout(defaultTimeout).SetRetryCount(0),
		baseURL: baseURL,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetLogger(c.logger.Named("resty").Sugar())
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch returns the document stored under key, or false when it cannot be
// obtained for any reason. Failures are logged and counted, never returned.
func (c *Client) Fetch(ctx context.Context, key string) (*Document, bool) {
	doc, err := c.fetch(ctx, key)
	c.observe(err)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			c.logger.Debug("content not found", zap.String("slug", key))
		} else {
			c.logger.Warn("content unavailable", zap.String("slug", key), zap.Error(err))
		}
		return nil, false
	}
	return doc, true
}

func (c *Client) fetch(ctx context.Context, key string) (*Document, error) {
	body, err := c.get(ctx, generalPath+key)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &doc, nil
}

// Index lists every slug the content API knows about.
func (c *Client) Index(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, indexPath)
	if err != nil {
		return nil, err
	}
	var slugs []string
	if err := json.Unmarshal(body, &slugs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return slugs, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-store").
		SetHeader("Accept", "application/json").
		Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func (c *Client) observe(err error) {
	if c.metrics == nil {
		return
	}
	outcome := observability.OutcomeOK
	var se *StatusError
	switch {
	case err == nil:
	case errors.As(err, &se):
		outcome = observability.OutcomeStatus
	case errors.Is(err, ErrDecode):
		outcome = observability.OutcomeDecode
	default:
		outcome = observability.OutcomeTransport
	}
	c.metrics.ContentFetches.WithLabelValues(outcome).Inc()
}
