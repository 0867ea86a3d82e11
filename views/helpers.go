package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins path segments onto a base URL. A trailing slash is never
// added; "/" is returned for the bare site root.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(append([]string{"/", u.Path}, pathSegments...)...)
	return u.String()
}

// PageTitle formats a document title with the site name suffix. The site
// name alone is used when title is empty or already equals it.
func PageTitle(cfg SiteConfig, title string) string {
	title = strings.TrimSpace(title)
	switch {
	case title == "" || title == cfg.Name:
		return cfg.Name
	case cfg.Name == "":
		return title
	}
	return title + " | " + cfg.Name
}

// IsActive reports whether href is the nav entry for the current path.
func IsActive(href, current string) bool {
	if href == "/" {
		return current == "/" || current == ""
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
