// Package markdown renders the rich-text fields of widget payloads.
package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// HTML converts src to sanitized HTML. Blank input yields "".
func HTML(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := engine.Convert([]byte(src), &buf); err != nil {
		return policy.Sanitize("<p>" + src + "</p>")
	}
	return policy.SanitizeReader(&buf).String()
}

// Node wraps HTML(src) as a raw gomponents node.
func Node(src string) g.Node {
	out := HTML(src)
	if out == "" {
		return nil
	}
	return g.Raw(out)
}
