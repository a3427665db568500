package slackbot

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service posts notifications to a Slack channel
type Service struct {
	client  *slack.Client
	channel string
}

// New creates a new Slack notifier for the given channel
func New(token, channel string) *Service {
	return &Service{
		client:  slack.New(token),
		channel: channel,
	}
}

// Notify posts the text to the configured channel
func (s *Service) Notify(ctx context.Context, text string) error {
	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post slack message",
			goerr.V("channel", s.channel))
	}
	return nil
}
