package config

import (
	"log/slog"

	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/service/slackbot"
	"github.com/urfave/cli/v3"
)

// Slack holds optional Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for channel notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("KNOCK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel that receives request summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("KNOCK_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// Configure returns the Slack notifier, or nil when not configured
func (s *Slack) Configure() interfaces.Notifier {
	if !s.IsConfigured() {
		return nil
	}
	return slackbot.New(s.OAuthToken, s.Channel)
}

// IsConfigured checks if Slack notifications are properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", s.IsConfigured()),
		slog.String("channel", s.Channel),
	)
}
