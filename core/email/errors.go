package email

import "errors"

// Error variables define email operation failures. Implementations wrap them
// with detailed context so callers can match the category with errors.Is
// while still seeing the underlying cause.
var (
	ErrSendFailed    = errors.New("failed to send email")
	ErrInvalidConfig = errors.New("invalid email configuration")
	ErrInvalidParams = errors.New("invalid email parameters")
)
