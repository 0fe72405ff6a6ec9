package ticket

import "errors"

// Error variables define the two failure categories callers can observe.
var (
	// ErrTicketCreation covers every failure between a valid configuration
	// and a delivered email: template read, message composition, and SMTP
	// delivery. The wrapped text carries the underlying cause.
	ErrTicketCreation = errors.New("unable to create ticket")

	// ErrInvalidRequest is returned when the caller-supplied request is
	// incomplete before any file or network activity takes place.
	ErrInvalidRequest = errors.New("invalid ticket request")
)
