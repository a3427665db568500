package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/service/mail"
	"github.com/urfave/cli/v3"
)

// SendGrid holds mail delivery configuration
type SendGrid struct {
	APIKey     string
	Sender     string
	SenderName string
}

// Flags returns CLI flags for SendGrid configuration
func (s *SendGrid) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sendgrid-api-key",
			Usage:       "SendGrid API key",
			Category:    "Mail",
			Sources:     cli.EnvVars("KNOCK_SENDGRID_API_KEY"),
			Destination: &s.APIKey,
		},
		&cli.StringFlag{
			Name:        "mail-sender",
			Usage:       "Sender address for notification emails",
			Category:    "Mail",
			Value:       "noreply@localhost",
			Sources:     cli.EnvVars("KNOCK_MAIL_SENDER"),
			Destination: &s.Sender,
		},
		&cli.StringFlag{
			Name:        "mail-sender-name",
			Usage:       "Sender display name for notification emails",
			Category:    "Mail",
			Value:       "Knock",
			Sources:     cli.EnvVars("KNOCK_MAIL_SENDER_NAME"),
			Destination: &s.SenderName,
		},
	}
}

// Configure returns the mailer. Without an API key, emails are recorded
// in memory and only visible in the log.
func (s *SendGrid) Configure(ctx context.Context) interfaces.Mailer {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Warn("No SendGrid API key configured, emails will only be logged")
		return mail.NewMemory()
	}
	return mail.NewSendGrid(s.APIKey, s.Sender, s.SenderName)
}

// IsConfigured checks if SendGrid is properly configured
func (s *SendGrid) IsConfigured() bool {
	return s.APIKey != ""
}

// LogValue returns structured log value
func (s SendGrid) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", s.IsConfigured()),
		slog.String("sender", s.Sender),
		slog.String("senderName", s.SenderName),
	)
}
