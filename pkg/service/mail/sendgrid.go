package mail

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/model"
	sendgridgo "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid delivers messages through the SendGrid API
type SendGrid struct {
	client     *sendgridgo.Client
	sender     string
	senderName string
}

// NewSendGrid creates a SendGrid-backed mailer
func NewSendGrid(apiKey, sender, senderName string) *SendGrid {
	return &SendGrid{
		client:     sendgridgo.NewSendClient(apiKey),
		sender:     sender,
		senderName: senderName,
	}
}

// Send delivers the message to every recipient. One failing recipient
// aborts the rest; the async dispatcher logs the error.
func (s *SendGrid) Send(ctx context.Context, msg *model.Message) error {
	if msg == nil {
		return goerr.New("message is nil")
	}

	from := sgmail.NewEmail(s.senderName, s.sender)

	for _, addr := range msg.To {
		to := sgmail.NewEmail(addr, addr)
		email := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

		resp, err := s.client.SendWithContext(ctx, email)
		if err != nil {
			return goerr.Wrap(err, "failed to send email",
				goerr.V("recipient", addr),
				goerr.V("type", msg.Type))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return goerr.New("sendgrid rejected email",
				goerr.V("recipient", addr),
				goerr.V("status", resp.StatusCode),
				goerr.V("body", resp.Body))
		}

		ctxlog.From(ctx).Debug("Email sent",
			"recipient", addr,
			"type", msg.Type,
		)
	}

	return nil
}
