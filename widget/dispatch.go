package widget

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Renderer turns a descriptor into markup. Implementations must not panic
// for any descriptor.
type Renderer interface {
	Render(ctx context.Context, d Descriptor) g.Node
}

// Rendered is one widget of a page after dispatch.
type Rendered struct {
	Key      string
	Type     string
	Fallback bool
	Node     g.Node
}

var catalog = map[Kind]Renderer{
	KindHomeBanner:         typed(renderHomeBanner),
	KindTwoColumnSection:   typed(renderTwoColumnSection),
	KindAboutSection:       typed(renderAboutSection),
	KindCTASection:         typed(renderCTASection),
	KindHomeProject:        typed(renderHomeProject),
	KindHomeBlog:           typed(renderHomeBlog),
	KindFAQSection:         typed(renderFAQSection),
	KindHomeService:        typed(renderHomeService),
	KindHomeProcess:        typed(renderHomeProcess),
	KindInnerBanner:        typedCtx(renderInnerBanner),
	KindAboutGrid:          typed(renderAboutGrid),
	KindAboutTeam:          typed(renderAboutTeam),
	KindServiceList:        typed(renderServiceList),
	KindImpactStats:        typed(renderImpactStats),
	KindProjectList:        typed(renderProjectList),
	KindWorkDetailBanner:   typed(renderWorkDetailBanner),
	KindWorkCaseStudy:      typed(renderWorkCaseStudy),
	KindContactPage:        typedCtx(renderContactPage),
	KindBlogList:           typedCtx(renderBlogList),
	KindBlogDetailBanner:   typedCtx(renderBlogDetailBanner),
	KindBlogDetailContent:  typed(renderBlogDetailContent),
	KindServiceDetailAbout: typed(renderServiceDetailAbout),
}

// Known reports whether widgetType names a kind in the catalog.
func Known(widgetType string) bool {
	_, ok := catalog[Kind(widgetType)]
	return ok
}

// Select returns the renderer for widgetType, or Fallback when the type is
// empty or not in the catalog.
func Select(widgetType string) Renderer {
	if r, ok := catalog[Kind(widgetType)]; ok {
		return r
	}
	return fallback
}

// RenderAll dispatches every descriptor in order and returns exactly one
// Rendered per input. Keys are the descriptor id when present, otherwise
// "widget-<index>".
func RenderAll(ctx context.Context, ws []Descriptor) []Rendered {
	out := make([]Rendered, 0, len(ws))
	for i, d := range ws {
		node := Select(d.Type).Render(ctx, d)
		_, fb := node.(placeholder)
		out = append(out, Rendered{
			Key:      key(d, i),
			Type:     d.Type,
			Fallback: fb,
			Node:     node,
		})
	}
	return out
}

func key(d Descriptor, i int) string {
	if d.ID != "" {
		return d.ID
	}
	return "widget-" + strconv.Itoa(i)
}

// Group wraps each rendered widget in a keyed container, in order.
func Group(rs []Rendered) g.Node {
	nodes := make([]g.Node, 0, len(rs))
	for _, r := range rs {
		nodes = append(nodes, h.Div(
			h.Class("widget"),
			h.Data("widget-key", r.Key),
			g.If(r.Type != "", h.Data("widget-type", r.Type)),
			r.Node,
		))
	}
	return g.Group(nodes)
}

// Component adapts rendered widgets to a templ component.
func Component(rs []Rendered) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Group(rs).Render(w)
	})
}

type fallbackRenderer struct{}

var fallback Renderer = fallbackRenderer{}

// Fallback returns the renderer used for unknown widget types. It emits an
// inert placeholder.
func Fallback() Renderer {
	return fallback
}

func (fallbackRenderer) Render(_ context.Context, d Descriptor) g.Node {
	return placeholder{widgetType: d.Type}
}

// placeholder is the node produced by Fallback.
type placeholder struct {
	widgetType string
}

func (p placeholder) Render(w io.Writer) error {
	return h.Div(
		h.Class("widget-unknown"),
		g.If(p.widgetType != "", h.Data("unknown-type", p.widgetType)),
		g.Text("Unknown Widget"),
	).Render(w)
}

type typedRenderer[T any] struct {
	render func(context.Context, T) g.Node
}

// typed builds a renderer that decodes the descriptor's "data" object into T.
func typed[T any](fn func(T) g.Node) Renderer {
	return typedRenderer[T]{render: func(_ context.Context, v T) g.Node { return fn(v) }}
}

func typedCtx[T any](fn func(context.Context, T) g.Node) Renderer {
	return typedRenderer[T]{render: fn}
}

func (r typedRenderer[T]) Render(ctx context.Context, d Descriptor) g.Node {
	var data T
	if err := d.DecodeData(&data); err != nil {
		return fallback.Render(ctx, d)
	}
	return r.render(ctx, data)
}
