package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender represents an interface for sending a single email.
type Sender interface {
	SendEmail(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending an email.
type SendParams struct {
	SendTo         string `json:"send_to"`                   // Email address of the recipient
	Subject        string `json:"subject"`                   // Subject of the email
	BodyHTML       string `json:"body_html"`                 // HTML body of the email
	Tag            string `json:"tag,omitempty"`             // Optional, for provider-side analytics
	UnsubscribeURL string `json:"unsubscribe_url,omitempty"` // Optional, emitted as List-Unsubscribe headers
}

// emailRegex is a pragmatic format check; full RFC 5322 validation is the
// transport provider's job.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks required fields before any transport work happens, so all
// Sender implementations reject malformed params consistently.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
