package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lichen911/support-ticket/core/email"
)

// Client implements email.Sender over the SMTP protocol. It opens one
// authenticated session per Send call and closes it on every exit path.
// Safe for concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
}

// New validates cfg and returns a Client. All validation happens here so a
// broken configuration fails at startup instead of at send time.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", email.ErrInvalidConfig)
	}
	if cfg.Username == "" || !email.ValidAddress(cfg.Username) {
		return nil, fmt.Errorf("%w: Username must be a valid email address", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}
	if cfg.TLSMode != "tls" && cfg.TLSMode != "starttls" && cfg.TLSMode != "plain" {
		return nil, fmt.Errorf("%w: TLSMode must be tls, starttls, or plain", email.ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

// MustNew is New that panics on invalid config, for startup wiring.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send transmits one email over a fresh authenticated session. Connect,
// authenticate, and protocol failures are collapsed into email.ErrSendFailed
// with the transport's description attached.
func (c *Client) Send(ctx context.Context, params email.SendParams) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", email.ErrSendFailed, err)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	message := c.buildMessage(params)
	serverAddr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	var err error
	switch c.config.TLSMode {
	case "tls":
		err = c.sendWithTLS(ctx, serverAddr, params.To, message)
	case "starttls":
		err = c.sendWithSTARTTLS(ctx, serverAddr, params.To, message)
	case "plain":
		err = c.sendPlain(ctx, serverAddr, params.To, message)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", email.ErrSendFailed, err)
	}

	return nil
}

// buildMessage assembles the MIME message with a fixed header order.
func (c *Client) buildMessage(params email.SendParams) []byte {
	headers := [][2]string{
		{"From", c.config.Username},
		{"To", params.To},
		{"Subject", params.Subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host)},
	}

	var message strings.Builder
	for _, h := range headers {
		message.WriteString(h[0])
		message.WriteString(": ")
		message.WriteString(h[1])
		message.WriteString("\r\n")
	}
	message.WriteString("\r\n")
	message.WriteString(params.BodyHTML)

	return []byte(message.String())
}

// sendWithTLS uses a connection that is TLS-encrypted from the first byte
// (SMTPS, typically port 465).
func (c *Client) sendWithTLS(ctx context.Context, serverAddr, recipient string, message []byte) error {
	dialer := &tls.Dialer{Config: &tls.Config{ServerName: c.config.Host}}

	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server with TLS: %v", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %v", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipient, message)
}

// sendWithSTARTTLS connects in plaintext and upgrades before authenticating
// (typically port 587).
func (c *Client) sendWithSTARTTLS(ctx context.Context, serverAddr, recipient string, message []byte) error {
	client, err := c.dial(ctx, serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %v", err)
	}

	return c.transact(client, recipient, message)
}

// sendPlain sends without encryption. Development only.
func (c *Client) sendPlain(ctx context.Context, serverAddr, recipient string, message []byte) error {
	client, err := c.dial(ctx, serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipient, message)
}

func (c *Client) dial(ctx context.Context, serverAddr string) (*smtp.Client, error) {
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %v", err)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %v", err)
	}
	return client, nil
}

// transact runs the authenticated AUTH/MAIL/RCPT/DATA exchange on an open
// session. The caller owns closing the session.
func (c *Client) transact(client *smtp.Client, recipient string, message []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	if err := client.Mail(c.config.Username); err != nil {
		return fmt.Errorf("failed to set sender: %v", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %v", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %v", err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %v", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %v", err)
	}

	// Quit errors are non-fatal: the message was already accepted, and some
	// servers drop the connection immediately after DATA.
	_ = client.Quit()

	return nil
}
