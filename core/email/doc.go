// Package email defines the provider-agnostic contract for sending HTML
// email: the Sender interface, the SendParams payload with validation, and
// the sentinel errors shared by all implementations.
//
// The package also ships DevSender, a Sender that writes emails to disk for
// local development instead of delivering them:
//
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.Send(ctx, email.SendParams{
//		To:       "support@example.com",
//		Subject:  "Request support for store 42",
//		BodyHTML: "<p>Printer broken</p>",
//		Tag:      "support_ticket",
//	})
//
// Production delivery lives in integration/email/smtp.
package email
