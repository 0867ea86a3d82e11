// Package widget maps the widget descriptors of a content document to
// renderable markup.
//
// The set of widget kinds is closed: every kind is listed in Kinds and has
// exactly one entry in the renderer catalog. Descriptors whose widget_type is
// missing or unknown are rendered by Fallback.
package widget

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind is a widget_type value known to the dispatcher.
type Kind string

// Widget kinds authored in the CMS.
const (
	KindHomeBanner         Kind = "HomeBanner"
	KindTwoColumnSection   Kind = "TwoColumnSection"
	KindAboutSection       Kind = "AboutSection"
	KindCTASection         Kind = "CTASection"
	KindHomeProject        Kind = "HomeProject"
	KindHomeBlog           Kind = "HomeBlog"
	KindFAQSection         Kind = "FAQSection"
	KindHomeService        Kind = "HomeService"
	KindHomeProcess        Kind = "HomeProcess"
	KindInnerBanner        Kind = "InnerBanner"
	KindAboutGrid          Kind = "AboutGrid"
	KindAboutTeam          Kind = "AboutTeam"
	KindServiceList        Kind = "ServiceList"
	KindImpactStats        Kind = "ImpactStats"
	KindProjectList        Kind = "ProjectList"
	KindWorkDetailBanner   Kind = "WorkDetailBanner"
	KindWorkCaseStudy      Kind = "WorkCaseStudy"
	KindContactPage        Kind = "ContactPage"
	KindBlogList           Kind = "BlogList"
	KindBlogDetailBanner   Kind = "BlogDetailBanner"
	KindBlogDetailContent  Kind = "BlogDetailContent"
	KindServiceDetailAbout Kind = "ServiceDetailAbout"
)

var kinds = []Kind{
	KindHomeBanner,
	KindTwoColumnSection,
	KindAboutSection,
	KindCTASection,
	KindHomeProject,
	KindHomeBlog,
	KindFAQSection,
	KindHomeService,
	KindHomeProcess,
	KindInnerBanner,
	KindAboutGrid,
	KindAboutTeam,
	KindServiceList,
	KindImpactStats,
	KindProjectList,
	KindWorkDetailBanner,
	KindWorkCaseStudy,
	KindContactPage,
	KindBlogList,
	KindBlogDetailBanner,
	KindBlogDetailContent,
	KindServiceDetailAbout,
}

// Kinds returns every known widget kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Descriptor is one entry of a document's widget list. Only Type and ID are
// read by the dispatcher; Raw holds the whole JSON object and is passed
// unchanged to the selected renderer.
type Descriptor struct {
	Type string
	ID   string
	Raw  json.RawMessage
}

// UnmarshalJSON keeps the raw object and extracts widget_type and id. It
// never fails on well-formed JSON: non-object entries, non-string types and
// unusable ids simply leave Type or ID empty.
func (d *Descriptor) UnmarshalJSON(b []byte) error {
	d.Raw = append(json.RawMessage(nil), b...)
	d.Type, d.ID = "", ""

	var head struct {
		Type json.RawMessage `json:"widget_type"`
		ID   json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil
	}
	var s string
	if len(head.Type) > 0 && json.Unmarshal(head.Type, &s) == nil {
		d.Type = s
	}
	d.ID = idValue(head.ID)
	return nil
}

// MarshalJSON writes Raw back out, or a minimal object when Raw is empty.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}
	obj := map[string]string{"widget_type": d.Type}
	if d.ID != "" {
		obj["id"] = d.ID
	}
	return json.Marshal(obj)
}

// DecodeData unmarshals the descriptor's "data" object into v. A missing
// or null "data" leaves v untouched.
func (d Descriptor) DecodeData(v any) error {
	if len(d.Raw) == 0 {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(d.Raw, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

// idValue normalizes a string or numeric id. Empty strings and zero are
// treated as absent.
func idValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || f == 0 {
			return ""
		}
		return string(raw)
	}
	return ""
}
