package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func descriptors(t *testing.T, src string) []Descriptor {
	t.Helper()
	var ds []Descriptor
	require.NoError(t, json.Unmarshal([]byte(src), &ds))
	return ds
}

func renderDoc(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if n != nil {
		require.NoError(t, n.Render(&buf))
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestEveryKindHasRenderer(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		require.True(t, Known(string(k)), "kind %s missing from catalog", k)
		_, fb := Select(string(k)).(fallbackRenderer)
		assert.False(t, fb, "kind %s must not select the fallback", k)
	}
	assert.Len(t, catalog, len(Kinds()))
}

func TestSelectFallsBack(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"", "NotAWidget", "homebanner", " HomeBanner"} {
		assert.Equal(t, Fallback(), Select(typ), "type %q", typ)
		assert.False(t, Known(typ))
	}
}

func TestRenderAllPreservesCountAndOrder(t *testing.T) {
	t.Parallel()

	ds := descriptors(t, `[
		{"id":"hero","widget_type":"InnerBanner","data":{"title":"About Us"}},
		{"widget_type":"Mystery"},
		{"id":7,"widget_type":"CTASection","data":{"title":"Talk"}},
		{}
	]`)

	rs := RenderAll(context.Background(), ds)
	require.Len(t, rs, 4)

	assert.Equal(t, "hero", rs[0].Key)
	assert.Equal(t, "widget-1", rs[1].Key)
	assert.Equal(t, "7", rs[2].Key)
	assert.Equal(t, "widget-3", rs[3].Key)

	assert.False(t, rs[0].Fallback)
	assert.True(t, rs[1].Fallback)
	assert.False(t, rs[2].Fallback)
	assert.True(t, rs[3].Fallback)

	doc := renderDoc(t, Group(rs))
	widgets := doc.Find("div.widget")
	require.Equal(t, 4, widgets.Length())
	assert.Equal(t, "hero", widgets.Eq(0).AttrOr("data-widget-key", ""))
	assert.Equal(t, "About Us", strings.TrimSpace(widgets.Eq(0).Find("h1").Text()))
	assert.Equal(t, "Unknown Widget", strings.TrimSpace(widgets.Eq(1).Text()))
	assert.Equal(t, "Mystery", widgets.Eq(1).Find(".widget-unknown").AttrOr("data-unknown-type", ""))
	assert.Equal(t, "Talk", strings.TrimSpace(widgets.Eq(2).Find("h2").Text()))
	_, hasType := widgets.Eq(3).Attr("data-widget-type")
	assert.False(t, hasType)
}

func TestRenderAllEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderAll(context.Background(), nil))
	assert.Empty(t, RenderAll(context.Background(), []Descriptor{}))

	doc := renderDoc(t, Group(nil))
	assert.Equal(t, 0, doc.Find("div.widget").Length())
}

func TestMalformedPayloadFallsBack(t *testing.T) {
	t.Parallel()

	ds := descriptors(t, `[
		{"widget_type":"CTASection","data":"not an object"},
		{"widget_type":"FAQSection","data":{"faqs":"nope"}},
		{"widget_type":"HomeBanner","data":{"bannerslides":[{"title":3}]}}
	]`)
	rs := RenderAll(context.Background(), ds)
	require.Len(t, rs, 3)
	for i, r := range rs {
		assert.True(t, r.Fallback, "widget %d", i)
	}
}

func TestEveryKindRendersWithoutData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, k := range Kinds() {
		for _, raw := range []string{
			`{"widget_type":"` + string(k) + `"}`,
			`{"widget_type":"` + string(k) + `","data":null}`,
			`{"widget_type":"` + string(k) + `","data":{}}`,
		} {
			var d Descriptor
			require.NoError(t, json.Unmarshal([]byte(raw), &d))
			assert.NotPanics(t, func() {
				rs := RenderAll(ctx, []Descriptor{d})
				require.Len(t, rs, 1)
				assert.False(t, rs[0].Fallback, "%s", raw)
				var buf bytes.Buffer
				require.NoError(t, Group(rs).Render(&buf))
			}, "%s", raw)
		}
	}
}

func TestComponentMatchesGroup(t *testing.T) {
	t.Parallel()

	rs := RenderAll(context.Background(), descriptors(t, `[{"widget_type":"InnerBanner","data":{"title":"X"}}]`))

	var a, b bytes.Buffer
	require.NoError(t, Group(rs).Render(&a))
	require.NoError(t, Component(rs).Render(context.Background(), &b))
	assert.Equal(t, a.String(), b.String())
}
