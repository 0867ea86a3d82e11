package content

import "strings"

// ResolveSlug joins route segments into a content key. It reports false when
// segments is nil or empty. Segments are joined as-is; case, percent-decoding
// and trailing slashes are the caller's concern.
func ResolveSlug(segments []string) (string, bool) {
	if len(segments) == 0 {
		return "", false
	}
	return strings.Join(segments, "/"), true
}

// SegmentsFromPath splits a request path into its non-empty segments.
// "/works/case-1/" yields ["works", "case-1"]; "/" yields nil.
func SegmentsFromPath(path string) []string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
