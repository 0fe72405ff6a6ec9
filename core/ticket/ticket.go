package ticket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lichen911/support-ticket/core/email"
	"github.com/lichen911/support-ticket/core/logger"
)

// Template tokens replaced verbatim in the template file. Substitution is
// case-sensitive and literal; no escaping is applied to the inserted values.
const (
	tokenStoreNumber = "STORE_NUMBER"
	tokenMessage     = "SUPPORT_MESSAGE"
)

// Config holds the ticket-specific configuration. Both fields are required;
// absence is a configuration error raised before any file or network access.
type Config struct {
	TemplateFilePath string `env:"TEMPLATE_FILE_PATH,required"`
	SupportTeamEmail string `env:"SUPPORT_TEAM_EMAIL,required"`
}

// Request is one caller-supplied support request. Immutable once built;
// it lives for the duration of a single invocation.
type Request struct {
	StoreNumber string
	Message     string
}

// Validate checks the request before any work is done on its behalf.
func (r Request) Validate() error {
	if r.StoreNumber == "" {
		return fmt.Errorf("%w: store number is required", ErrInvalidRequest)
	}
	if r.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}
	return nil
}

// Service turns support requests into tickets: it renders the configured
// template and delivers the result through the injected sender.
type Service struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
}

// NewService validates the configuration and returns a ready Service.
// A nil log disables logging.
func NewService(cfg Config, sender email.Sender, log *slog.Logger) (*Service, error) {
	if cfg.TemplateFilePath == "" {
		return nil, fmt.Errorf("%w: TemplateFilePath is required", email.ErrInvalidConfig)
	}
	if cfg.SupportTeamEmail == "" || !email.ValidAddress(cfg.SupportTeamEmail) {
		return nil, fmt.Errorf("%w: SupportTeamEmail must be a valid email address", email.ErrInvalidConfig)
	}
	if sender == nil {
		return nil, fmt.Errorf("%w: sender is required", email.ErrInvalidConfig)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		cfg:    cfg,
		sender: sender,
		log:    log,
	}, nil
}

// Create renders the support-request email for req and sends it to the
// support team. Every failure past request validation is reported as
// ErrTicketCreation with the underlying cause attached.
func (s *Service) Create(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	body, err := s.renderBody(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTicketCreation, err)
	}
	s.log.DebugContext(ctx, "rendered ticket body",
		logger.Component("ticket"),
		slog.String("store_number", req.StoreNumber),
		slog.Int("body_bytes", len(body)),
	)

	params := email.SendParams{
		To:       s.cfg.SupportTeamEmail,
		Subject:  Subject(req),
		BodyHTML: body,
		Tag:      "support_ticket",
	}
	if err := s.sender.Send(ctx, params); err != nil {
		return fmt.Errorf("%w: %v", ErrTicketCreation, err)
	}

	s.log.InfoContext(ctx, "support ticket created",
		logger.Component("ticket"),
		slog.String("store_number", req.StoreNumber),
		slog.String("to", s.cfg.SupportTeamEmail),
	)
	return nil
}

// Subject builds the fixed-format subject line for a request.
func Subject(req Request) string {
	return fmt.Sprintf("Request support for store %s", req.StoreNumber)
}

// renderBody reads the template file and substitutes both tokens in two
// sequential passes, so text introduced by the store-number substitution is
// still subject to the message substitution.
func (s *Service) renderBody(req Request) (string, error) {
	raw, err := os.ReadFile(s.cfg.TemplateFilePath)
	if err != nil {
		return "", fmt.Errorf("read template: %v", err)
	}

	body := strings.ReplaceAll(string(raw), tokenStoreNumber, req.StoreNumber)
	body = strings.ReplaceAll(body, tokenMessage, req.Message)
	return body, nil
}
