package studioweb

import (
	"net/url"
	"strings"

	"github.com/gcstudio/studioweb/views"
)

// absoluteURL resolves an authored link against the site base URL. Absolute
// http(s) links pass through; "" and "#" resolve to the site root.
func absoluteURL(base, link string) string {
	link = strings.TrimSpace(link)
	if link == "" || link == "#" {
		return views.BuildURL(base)
	}
	if u, err := url.Parse(link); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return link
	}
	b, err := url.Parse(views.BuildURL(base))
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return b.ResolveReference(ref).String()
}
