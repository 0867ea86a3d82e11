package studioweb

import "time"

// ContactSubmission is one message sent through the contact form.
type ContactSubmission struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Message   string
	IP        string
	UserAgent string
	Page      string // path the form was posted from
	CreatedAt time.Time
}

// FlashKind classifies a one-shot session message.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)
