package studioweb

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gcstudio/studioweb/widget"
)

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5000

	contactPath = "/contact"

	msgContactSent    = "Thanks for reaching out! We'll get back to you soon."
	msgContactLimited = "Too many messages. Please try again later."
)

// ValidationError describes the first invalid contact form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (a *App) handleContact(c echo.Context) error {
	back := redirectTarget(c.Request().Referer())

	if !a.contactLimiter.Allow(c.RealIP()) {
		a.Logger.Warn("contact rate limited", zap.String("ip", c.RealIP()))
		return a.flashRedirect(c, back, FlashError, msgContactLimited)
	}

	sub, err := parseSubmission(c)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return a.flashRedirect(c, back, FlashError, ve.Message)
		}
		return err
	}
	sub.IP = c.RealIP()
	sub.UserAgent = c.Request().UserAgent()
	sub.Page = back

	id, err := a.Store.SaveSubmission(c.Request().Context(), sub)
	if err != nil {
		return err
	}
	a.Logger.Info("contact submission saved", zap.Int64("id", id), zap.String("page", back))
	return a.flashRedirect(c, back, FlashSuccess, msgContactSent)
}

func (a *App) flashRedirect(c echo.Context, to string, kind FlashKind, msg string) error {
	if err := setFlash(c, kind, msg); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// parseSubmission reads and validates the contact form fields.
func parseSubmission(c echo.Context) (ContactSubmission, error) {
	sub := ContactSubmission{
		FirstName: strings.TrimSpace(c.FormValue(widget.FieldFirstName)),
		LastName:  strings.TrimSpace(c.FormValue(widget.FieldLastName)),
		Email:     strings.TrimSpace(c.FormValue(widget.FieldEmail)),
		Message:   strings.TrimSpace(c.FormValue(widget.FieldMessage)),
	}
	return sub, validateSubmission(sub)
}

func validateSubmission(sub ContactSubmission) error {
	switch {
	case sub.FirstName == "":
		return &ValidationError{Field: widget.FieldFirstName, Message: "Please enter your first name."}
	case utf8.RuneCountInString(sub.FirstName) > maxNameLen || utf8.RuneCountInString(sub.LastName) > maxNameLen:
		return &ValidationError{Field: widget.FieldFirstName, Message: "Name is too long."}
	case sub.Email == "" || !strings.Contains(sub.Email, "@") || strings.ContainsAny(sub.Email, " \t\r\n"):
		return &ValidationError{Field: widget.FieldEmail, Message: "Please enter a valid email address."}
	case len(sub.Email) > maxEmailLen:
		return &ValidationError{Field: widget.FieldEmail, Message: "Email address is too long."}
	case sub.Message == "":
		return &ValidationError{Field: widget.FieldMessage, Message: "Please tell us about your project."}
	case utf8.RuneCountInString(sub.Message) > maxMessageLen:
		return &ValidationError{Field: widget.FieldMessage, Message: "Message is too long."}
	}
	return nil
}

// redirectTarget keeps only the path and query of referer so the redirect
// always stays on this site. It falls back to the contact page.
func redirectTarget(referer string) string {
	if referer == "" {
		return contactPath
	}
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return contactPath
	}
	target := u.EscapedPath()
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
