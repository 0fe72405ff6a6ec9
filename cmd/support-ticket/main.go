// Command support-ticket sends a templated support-request email for a
// store over an authenticated SMTP session.
//
// Usage:
//
//	support-ticket <store_number> <message>
//
// All configuration comes from the environment (optionally via a .env file):
// EMAIL_ADDRESS, EMAIL_PASSWORD, SMTP_SERVER, SMTP_PORT, TEMPLATE_FILE_PATH,
// SUPPORT_TEAM_EMAIL. With APP_ENV=development the email is written to
// DEV_EMAIL_DIR instead of being sent.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lichen911/support-ticket/core/config"
	"github.com/lichen911/support-ticket/core/email"
	"github.com/lichen911/support-ticket/core/logger"
	"github.com/lichen911/support-ticket/core/ticket"
	"github.com/lichen911/support-ticket/integration/email/smtp"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./dev_emails"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("Error creating ticket: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "support-ticket <store_number> <message>",
		Short: "Create a support ticket via a template based email",
		Long: `Create a support ticket by sending a templated email to the support team.

The template file may contain the tokens STORE_NUMBER and SUPPORT_MESSAGE,
which are replaced with the given arguments before sending.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	var appCfg appConfig
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	log := logger.New(logger.WithLevel(logger.ParseLevel(appCfg.LogLevel)))

	var ticketCfg ticket.Config
	if err := config.Load(&ticketCfg); err != nil {
		return err
	}

	sender, err := newSender(appCfg, log)
	if err != nil {
		return err
	}

	svc, err := ticket.NewService(ticketCfg, sender, log)
	if err != nil {
		return err
	}

	return svc.Create(cmd.Context(), ticket.Request{
		StoreNumber: args[0],
		Message:     args[1],
	})
}

// newSender picks the delivery mechanism: SMTP in production, files on disk
// in development.
func newSender(cfg appConfig, log *slog.Logger) (email.Sender, error) {
	if cfg.Env == "development" {
		log.Debug("using development email sender",
			logger.Component("cli"),
			slog.String("dir", cfg.DevEmailDir),
		)
		return email.NewDevSender(cfg.DevEmailDir), nil
	}

	var smtpCfg smtp.Config
	if err := config.Load(&smtpCfg); err != nil {
		return nil, err
	}
	return smtp.New(smtpCfg)
}
