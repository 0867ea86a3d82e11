package studioweb

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/internal/observability"
)

var testDocs = map[string]string{
	"home": `{"data":{"seo":{"metaTitle":"Digital Studio","metaDescription":"We build websites.","metaImage":{"url":{"url":"https://cdn.example.com/og.png"}}},
		"widgets":[{"widget_type":"CTASection","id":"cta","data":{"title":"Let's build"}}]}}`,
	"about": `{"data":{"seo":{"metaTitle":"About"},
		"widgets":[{"widget_type":"InnerBanner","data":{"title":"About Us"}},{"widget_type":"Bogus","data":{"x":1}}]}}`,
	"works/case-1": `{"data":{"widgets":[{"widget_type":"WorkDetailBanner","data":{"title":"Case One"}}]}}`,
	"contact":      `{"data":{"widgets":[{"widget_type":"ContactPage","data":{}}]}}`,
	"blogs": `{"data":{"widgets":[{"widget_type":"BlogList","data":{"blogs":[
		{"title":"Launch Notes","link":"/blogs/launch-notes","date":"2024-05-01","author":"Ana","tags":["news"]},
		{"title":"Design Systems","link":"/blogs/design-systems","date":"March 3, 2024"},
		{"title":"Launch Notes","link":"/blogs/launch-notes"},
		{"title":"","link":"/blogs/untitled"}]}}]}}`,
	"empty":  `{}`,
	"broken": `not json`,
}

func newContentBackend(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/general/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[strings.TrimPrefix(r.URL.Path, "/api/general/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
	mux.HandleFunc("/api/index", func(w http.ResponseWriter, r *http.Request) {
		slugs := make([]string, 0, len(docs))
		for k := range docs {
			slugs = append(slugs, k)
		}
		sort.Strings(slugs)
		_ = json.NewEncoder(w).Encode(slugs)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, backendURL string) *App {
	t.Helper()
	app := New(SiteConfig{
		Name:          "GC Studio",
		URL:           "https://gc.example.com",
		Description:   "Digital product studio",
		DatabasePath:  filepath.Join(t.TempDir(), "site.db"),
		ContentAPIURL: backendURL,
		SessionSecret: "test-session-secret",
	},
		WithLogger(zap.NewNop()),
		WithRegistry(prometheus.NewRegistry()),
	)
	require.NoError(t, app.Setup())
	t.Cleanup(func() { app.Close() })
	return app
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(app, httptest.NewRequest(http.MethodGet, target, nil))
}

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestSetupRequiresSessionSecret(t *testing.T) {
	app := New(SiteConfig{}, WithLogger(zap.NewNop()))
	assert.Error(t, app.Setup())
}

func TestHomePage(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	doc := parseHTML(t, rec.Body.String())
	assert.Equal(t, "Digital Studio | GC Studio", doc.Find("title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "We build websites.", desc)
	img, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	assert.Equal(t, "https://cdn.example.com/og.png", img)
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://gc.example.com/", canonical)

	main := doc.Find("main.isHome")
	require.Equal(t, 1, main.Length())
	w := main.Find("div.widget")
	require.Equal(t, 1, w.Length())
	key, _ := w.Attr("data-widget-key")
	assert.Equal(t, "cta", key)
	assert.Contains(t, w.Text(), "Let's build")
}

func TestNestedSlugPage(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/works/case-1")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	assert.Equal(t, "Case One", doc.Find("main.page h1.work-title").Text())
	assert.Equal(t, "Page | GC Studio", doc.Find("title").Text())
}

func TestPageRendersFallbackAndCountsMetrics(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/about")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseHTML(t, rec.Body.String())
	widgets := doc.Find("main div.widget")
	require.Equal(t, 2, widgets.Length())
	assert.Equal(t, "About Us", widgets.Eq(0).Find("h1").Text())
	assert.Equal(t, "About", widgets.Eq(0).Find(`[aria-current="page"]`).Last().Text())
	unknown, _ := widgets.Eq(1).Find(".widget-unknown").Attr("data-unknown-type")
	assert.Equal(t, "Bogus", unknown)

	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.WidgetRenders.WithLabelValues("InnerBanner", observability.OutcomeRendered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.WidgetRenders.WithLabelValues("unknown", observability.OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.ContentFetches.WithLabelValues(observability.OutcomeOK)))
}

func TestEmptyDocumentRendersEmptyMain(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/empty")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	assert.Equal(t, 1, doc.Find("main.page").Length())
	assert.Equal(t, 0, doc.Find("main .widget").Length())
}

func TestContentUnavailableIsNotFound(t *testing.T) {
	backend := newContentBackend(t, testDocs)
	app := newTestApp(t, backend.URL)

	for _, path := range []string{"/missing", "/broken", "/works/case-2"} {
		rec := get(t, app, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, "404", doc.Find("h1.error-code").Text(), path)
		robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
		assert.Equal(t, "noindex", robots, path)
	}
}

func TestContentServerDownIsNotFound(t *testing.T) {
	backend := newContentBackend(t, testDocs)
	backend.Close()
	app := newTestApp(t, backend.URL)

	rec := get(t, app, "/about")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.ContentFetches.WithLabelValues(observability.OutcomeTransport)))
}

func TestTrailingSlashRedirects(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/about/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
}

func TestLegalPages(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	tests := []struct {
		path  string
		title string
	}{
		{"/privacy-policy", "Privacy Policy | GC Studio"},
		{"/terms-and-conditions", "Terms & Conditions | GC Studio"},
	}
	for _, tt := range tests {
		rec := get(t, app, tt.path)
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, tt.title, doc.Find("title").Text())
		assert.Equal(t, 1, doc.Find("main.legal-page h1").Length(), tt.path)
		assert.Greater(t, doc.Find("main.legal-page h2").Length(), 2, tt.path)
	}
}

func TestEmbeddedStylesheet(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/public/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), ".MainWrap")
}

func TestBlogsOutOfRangePage(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	for _, page := range []string{"1152921504606846976", "9223372036854775807", "-3", "x"} {
		rec := get(t, app, "/blogs?page="+page)
		require.Equal(t, http.StatusOK, rec.Code, page)
		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, 4, doc.Find(".blog-list article").Length(), page)
	}
}

func TestRobots(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://gc.example.com/sitemap.xml")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	get(t, app, "/about")
	rec := get(t, app, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "studioweb_widget_renders_total")
}

func TestSitemap(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header))

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Equal(t, "https://gc.example.com/", locs[0])
	assert.Contains(t, locs, "https://gc.example.com/works/case-1")
	assert.Contains(t, locs, "https://gc.example.com/privacy-policy")
	assert.NotContains(t, locs, "https://gc.example.com/home")
}

func TestSitemapWithoutIndex(t *testing.T) {
	backend := newContentBackend(t, testDocs)
	backend.Close()
	app := newTestApp(t, backend.URL)

	rec := get(t, app, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://gc.example.com/", set.URLs[0].Loc)
	assert.Equal(t, "https://gc.example.com/privacy-policy", set.URLs[1].Loc)
	assert.Equal(t, "https://gc.example.com/terms-and-conditions", set.URLs[2].Loc)
}

func TestFeed(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")

	var feed rssXML
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Equal(t, "GC Studio", feed.Channel.Title)
	require.Len(t, feed.Channel.Items, 2)

	first := feed.Channel.Items[0]
	assert.Equal(t, "Launch Notes", first.Title)
	assert.Equal(t, "https://gc.example.com/blogs/launch-notes", first.Link)
	assert.Equal(t, "Wed, 01 May 2024 00:00:00 +0000", first.PubDate)
	assert.Equal(t, []string{"news"}, first.Categories)

	assert.Equal(t, "Design Systems", feed.Channel.Items[1].Title)
	assert.Equal(t, "Sun, 03 Mar 2024 00:00:00 +0000", feed.Channel.Items[1].PubDate)
}

func TestFeedWithoutBlogs(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, map[string]string{}).URL)

	rec := get(t, app, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	var feed rssXML
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Empty(t, feed.Channel.Items)
}

// postContact submits the contact form with a matching CSRF cookie and field.
func postContact(app *App, form url.Values, referer string) *httptest.ResponseRecorder {
	const token = "test-csrf-token"
	form.Set("_csrf", token)
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "_csrf", Value: token})
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	return serve(app, req)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			return c
		}
	}
	return nil
}

func TestContactFormRendersToken(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := get(t, app, "/contact")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	token, ok := doc.Find(`form.contact-form input[name="_csrf"]`).Attr("value")
	require.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestContactSubmit(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := postContact(app, url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"email":     {"ada@example.com"},
		"message":   {"We need a new website."},
	}, "https://gc.example.com/contact")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))

	subs, err := app.Store.ListSubmissions(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Ada", subs[0].FirstName)
	assert.Equal(t, "/contact", subs[0].Page)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(cookie)
	next := serve(app, req)
	require.Equal(t, http.StatusOK, next.Code)
	doc := parseHTML(t, next.Body.String())
	flash := doc.Find(".flash.flash-success")
	require.Equal(t, 1, flash.Length())
	assert.Equal(t, msgContactSent, flash.Text())
}

func TestContactValidationError(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	rec := postContact(app, url.Values{
		"firstName": {"Ada"},
		"email":     {"not-an-email"},
		"message":   {"hi"},
	}, "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))

	subs, err := app.Store.ListSubmissions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, subs)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(sessionCookie(rec))
	doc := parseHTML(t, serve(app, req).Body.String())
	assert.Equal(t, "Please enter a valid email address.", doc.Find(".flash.flash-error").Text())
}

func TestContactRequiresCSRF(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	form := url.Values{"firstName": {"Ada"}, "email": {"a@b.c"}, "message": {"hi"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(app, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContactRateLimited(t *testing.T) {
	app := newTestApp(t, newContentBackend(t, testDocs).URL)

	form := func() url.Values {
		return url.Values{"firstName": {"Ada"}, "email": {"a@b.c"}, "message": {"hi"}}
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusSeeOther, postContact(app, form(), "").Code)
	}
	rec := postContact(app, form(), "")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	subs, err := app.Store.ListSubmissions(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, subs, 5)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(sessionCookie(rec))
	doc := parseHTML(t, serve(app, req).Body.String())
	assert.Equal(t, msgContactLimited, doc.Find(".flash.flash-error").Text())
}
