package widget

import "context"

// RequestInfo carries per-request values that a few widgets need: the
// breadcrumb trail, share links and the contact form.
type RequestInfo struct {
	// Path is the request path, e.g. "/blogs/launch-notes".
	Path string
	// URL is the absolute page URL used in share links.
	URL string
	// Page is the 1-based listing page requested with ?page=. Values below
	// 1 are treated as 1.
	Page int

	CSRFToken string
	// FormAction is where the contact form posts. Defaults to "/contact".
	FormAction string
	Flash      string
	// FlashKind is "success" or "error".
	FlashKind string
}

type requestKey struct{}

// WithRequest attaches info to ctx for the renderers.
func WithRequest(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestKey{}, info)
}

func requestFrom(ctx context.Context) RequestInfo {
	if ctx == nil {
		return RequestInfo{}
	}
	info, _ := ctx.Value(requestKey{}).(RequestInfo)
	return info
}
