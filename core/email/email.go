package email

import (
	"context"
	"fmt"
	"regexp"
)

// Sender delivers a single HTML email. Implementations must be safe for
// concurrent use and must not retry internally.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams describes one outbound email.
type SendParams struct {
	To       string // recipient address (required)
	Subject  string // subject line (required)
	BodyHTML string // HTML body (required)
	Tag      string // optional tag for tracking and dev-mode filenames
}

// addressRegex is intentionally loose; real validation happens at the
// receiving MTA. It only catches obviously malformed input early.
var addressRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether addr looks like an email address.
func ValidAddress(addr string) bool {
	return addressRegex.MatchString(addr)
}

// Validate checks that all required fields are present and well formed.
func (p SendParams) Validate() error {
	if p.To == "" || !ValidAddress(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
