package widget

import (
	"context"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Contact form field names. The site's POST handler reads the same names.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldCSRF      = "_csrf"
)

func renderContactPage(ctx context.Context, d ContactPageData) g.Node {
	req := requestFrom(ctx)
	return h.Section(h.Class("contact-page"),
		h.Div(h.Class("container"),
			sectionHeader(
				or(d.Label, "Book A Call"),
				or(d.Title, "Your Next Big Move Starts Here"),
				or(d.Description, "Reach out today and let's explore how our expertise can bring your vision to life. We're just a call away from turning ideas into impact."),
			),
			h.Div(h.Class("contact-grid"),
				h.Aside(h.Class("contact-aside"),
					contactProfile(d.Profile),
					reachOut(d.ReachOut),
					socials(d.Socials),
				),
				contactForm(d.ContactForm, req),
			),
		),
	)
}

func contactProfile(p Profile) g.Node {
	if p == (Profile{}) {
		return nil
	}
	return h.Div(h.Class("contact-profile"),
		image(imagePath(p.Image, ""), or(p.Name, "Profile"), "contact-profile-image"),
		h.P(g.Text("Hi, I'm "), h.Strong(g.Text(or(p.Name, "Hana Suzuki")+","))),
		h.P(h.Class("contact-profile-role"), g.Text(or(p.Role, "Client Success Manager"))),
		h.P(g.Text(or(p.Description, "If you'd rather talk it through than type it out, I'm here and ready to chat anytime"))),
		g.If(p.ButtonLink != "", h.A(h.Class("btn btn-secondary"), h.Href(p.ButtonLink),
			g.Text(or(p.ButtonText, "Talk Directly To Me")))),
	)
}

func reachOut(r ReachOut) g.Node {
	if r.Email == "" && r.Phone == "" {
		return nil
	}
	return h.Div(h.Class("contact-reach-out"),
		h.H4(g.Text(or(r.Heading, "Reach Out"))),
		g.If(r.Email != "", h.P(h.A(h.Href("mailto:"+r.Email), g.Text(r.Email)))),
		g.If(r.Phone != "", h.P(h.A(h.Href("tel:"+strings.Join(strings.Fields(r.Phone), "")), g.Text(r.Phone)))),
	)
}

func socials(s Socials) g.Node {
	if len(s.Links) == 0 {
		return nil
	}
	return h.Div(h.Class("contact-socials"),
		h.H4(g.Text(or(s.Heading, "Socials"))),
		h.Ul(g.Map(s.Links, func(l SocialLink) g.Node {
			return h.Li(h.A(h.Href(l.URL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(l.Platform)))
		})),
	)
}

func contactForm(f ContactForm, req RequestInfo) g.Node {
	var flash g.Node
	if req.Flash != "" {
		kind := or(req.FlashKind, "success")
		flash = h.Div(h.Class("flash flash-"+kind), g.Attr("role", "status"), g.Text(req.Flash))
	}

	return h.Div(h.Class("contact-form-wrapper"),
		h.H3(g.Text(or(f.Heading, "Contact Us"))),
		flash,
		h.Form(h.Class("contact-form"), h.Method("post"), h.Action(or(req.FormAction, "/contact")),
			g.If(req.CSRFToken != "", h.Input(h.Type("hidden"), h.Name(FieldCSRF), h.Value(req.CSRFToken))),
			h.Div(h.Class("form-row"),
				h.Input(h.Type("text"), h.Name(FieldFirstName), h.Placeholder("First Name"), h.Required()),
				h.Input(h.Type("text"), h.Name(FieldLastName), h.Placeholder("Last Name"), h.Required()),
			),
			h.Input(h.Type("email"), h.Name(FieldEmail), h.Placeholder("Email"), h.Required()),
			h.Textarea(h.Name(FieldMessage), h.Placeholder("Describe your project"), h.Rows("5"), h.Required()),
			g.If(f.TermsText != "", h.P(h.Class("form-terms"),
				g.Text(f.TermsText+" "),
				g.If(f.TermsLink != "", h.A(h.Href(f.TermsLink), g.Text("terms & conditions"))),
			)),
			h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text(or(f.SubmitButtonText, "Submit"))),
		),
	)
}
