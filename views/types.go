package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to the layout so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME (default "GC Studio")
	URL         string // SITE_URL  (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
}

// PageMeta carries per-page OpenGraph and SEO metadata into <head>.
type PageMeta struct {
	Title       string
	Description string
	Image       string // og:image / twitter:image, omitted when empty
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	NoIndex     bool
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Title string
	Href  string
}

// HeaderNav is the static header navigation.
var HeaderNav = []NavLink{
	{Title: "Home", Href: "/"},
	{Title: "About", Href: "/about"},
	{Title: "Services", Href: "/services"},
	{Title: "Works", Href: "/works"},
	{Title: "Contact Us", Href: "/contact"},
}

// FooterNav links to the static legal pages.
var FooterNav = []NavLink{
	{Title: "Privacy Policy", Href: "/privacy-policy"},
	{Title: "Terms & Conditions", Href: "/terms-and-conditions"},
}
