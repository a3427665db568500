package mail_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/service/mail"
)

func testNotification() *model.InstallRequestNotification {
	return &model.InstallRequestNotification{
		Subject:          "Your team member requested the Slack integration",
		ProviderName:     "Slack",
		ProviderLink:     "https://example.com/settings/acme/integrations/slack",
		Message:          "please add",
		OrganizationName: "Acme Corp",
		RequesterName:    "Alice",
		RequesterLink:    "https://example.com/settings/acme/members/u1/",
		SettingsLink:     "https://example.com/settings/acme/",
		Recipients:       []string{"bob@example.com", "carol@example.com"},
	}
}

func TestNewInstallRequestMessage(t *testing.T) {
	msg, err := mail.NewInstallRequestMessage(testNotification())
	gt.NoError(t, err).Required()

	gt.Equal(t, "Your team member requested the Slack integration", msg.Subject)
	gt.Equal(t, model.NotificationType, msg.Type)
	gt.Equal(t, []string{"bob@example.com", "carol@example.com"}, msg.To)

	gt.True(t, strings.Contains(msg.Text, "Alice is requesting the Slack integration for Acme Corp"))
	gt.True(t, strings.Contains(msg.Text, "please add"))
	gt.True(t, strings.Contains(msg.Text, "https://example.com/settings/acme/integrations/slack"))
	gt.True(t, strings.Contains(msg.Text, "https://example.com/settings/acme/members/u1/"))
	gt.True(t, strings.Contains(msg.Text, "https://example.com/settings/acme/"))

	gt.True(t, strings.Contains(msg.HTML, "<strong>Slack</strong>"))
	gt.True(t, strings.Contains(msg.HTML, `href="https://example.com/settings/acme/integrations/slack"`))
}

func TestNewInstallRequestMessageWithoutNote(t *testing.T) {
	n := testNotification()
	n.Message = ""

	msg, err := mail.NewInstallRequestMessage(n)
	gt.NoError(t, err).Required()
	gt.True(t, !strings.Contains(msg.Text, "They left a note"))
	gt.True(t, !strings.Contains(msg.HTML, "They left a note"))
}

func TestNewInstallRequestMessageEscapesHTML(t *testing.T) {
	n := testNotification()
	n.Message = `<script>alert("x")</script>`

	msg, err := mail.NewInstallRequestMessage(n)
	gt.NoError(t, err).Required()
	gt.True(t, !strings.Contains(msg.HTML, "<script>"))
	gt.True(t, strings.Contains(msg.HTML, "&lt;script&gt;"))
}

func TestNewInstallRequestMessageRejectsEmptyRecipients(t *testing.T) {
	n := testNotification()
	n.Recipients = nil

	_, err := mail.NewInstallRequestMessage(n)
	gt.Error(t, err)
}

func TestMemoryMailer(t *testing.T) {
	mailer := mail.NewMemory()

	msg, err := mail.NewInstallRequestMessage(testNotification())
	gt.NoError(t, err).Required()

	gt.NoError(t, mailer.Send(context.Background(), msg))
	gt.Equal(t, 1, len(mailer.Messages()))
	gt.Equal(t, msg.Subject, mailer.Messages()[0].Subject)
}
