package content

import "github.com/gcstudio/studioweb/widget"

// Document is the envelope returned by the content API for one slug:
//
//	{"data": {"seo": {...}, "widgets": [...]}}
//
// Every field is optional.
type Document struct {
	Data Page `json:"data"`
}

// Page holds the SEO bag and the ordered widget list of a document.
type Page struct {
	SEO     *SEO                `json:"seo,omitempty"`
	Widgets []widget.Descriptor `json:"widgets,omitempty"`
}

// SEO is the metadata bag authored alongside a page.
type SEO struct {
	MetaTitle       string     `json:"metaTitle,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaImage       *MetaImage `json:"metaImage,omitempty"`
}

// MetaImage mirrors the CMS media shape {"url": {"url": "..."}}.
type MetaImage struct {
	URL struct {
		URL string `json:"url"`
	} `json:"url"`
}

// Metadata is the page-level head information derived from a document.
type Metadata struct {
	Title       string
	Description string
	Image       string
}

const defaultTitle = "Page"

// NotFoundMetadata is used when no document could be resolved.
var NotFoundMetadata = Metadata{
	Title:       "Page Not Found",
	Description: "The page you are looking for does not exist.",
}

// Widgets returns the document's widgets in order. A nil document has none.
func (d *Document) Widgets() []widget.Descriptor {
	if d == nil {
		return nil
	}
	return d.Data.Widgets
}

// Metadata shapes the SEO bag into head metadata, defaulting the title to
// "Page" when the bag or its title is missing.
func (d *Document) Metadata() Metadata {
	if d == nil || d.Data.SEO == nil {
		return Metadata{Title: defaultTitle}
	}
	seo := d.Data.SEO
	m := Metadata{
		Title:       seo.MetaTitle,
		Description: seo.MetaDescription,
	}
	if m.Title == "" {
		m.Title = defaultTitle
	}
	if seo.MetaImage != nil {
		m.Image = seo.MetaImage.URL.URL
	}
	return m
}
