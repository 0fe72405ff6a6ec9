// Package ticket implements the support-ticket domain: a Request carrying a
// store number and a message, template rendering by literal token
// substitution, and a Service that composes and delivers the resulting
// email through a core/email.Sender.
//
// "Creating a ticket" means successfully sending the rendered email to the
// configured support-team address. The template file may contain the tokens
// STORE_NUMBER and SUPPORT_MESSAGE; every occurrence is replaced verbatim,
// without escaping, before the email is sent.
package ticket
