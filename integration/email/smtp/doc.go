// Package smtp provides an SMTP-based implementation of the
// core/email.Sender interface.
//
// The default mode, "tls", speaks SMTP over a connection that is
// TLS-encrypted from the start of the session (SMTPS, port 465). "starttls"
// (port 587) and "plain" (port 25, development only) are also supported.
// Every Send opens one authenticated session, transmits one message, and
// closes the session regardless of outcome.
//
// Basic usage:
//
//	cfg := smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     465,
//		Username: "tickets@example.com",
//		Password: "app-password",
//		TLSMode:  "tls",
//	}
//
//	client, err := smtp.New(cfg)
//	if err != nil {
//		// configuration error
//	}
//
//	err = client.Send(ctx, email.SendParams{
//		To:       "support@example.com",
//		Subject:  "Request support for store 42",
//		BodyHTML: "<p>Printer broken</p>",
//	})
//
// Connect, authentication, and protocol failures are all reported as
// email.ErrSendFailed with the underlying description attached; callers
// are not expected to distinguish between them.
package smtp
