package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/model"
)

//go:embed templates/*.txt templates/*.html
var templateFS embed.FS

var (
	installRequestText = texttemplate.Must(
		texttemplate.ParseFS(templateFS, "templates/organization-integration.txt"))
	installRequestHTML = htmltemplate.Must(
		htmltemplate.ParseFS(templateFS, "templates/organization-integration.html"))
)

// NewInstallRequestMessage renders the owner notification for an
// integration install request
func NewInstallRequestMessage(n *model.InstallRequestNotification) (*model.Message, error) {
	if n == nil {
		return nil, goerr.New("notification is nil")
	}
	if len(n.Recipients) == 0 {
		return nil, goerr.New("notification has no recipients")
	}

	var text bytes.Buffer
	if err := installRequestText.Execute(&text, n); err != nil {
		return nil, goerr.Wrap(err, "failed to render text body")
	}

	var html bytes.Buffer
	if err := installRequestHTML.Execute(&html, n); err != nil {
		return nil, goerr.Wrap(err, "failed to render HTML body")
	}

	return &model.Message{
		Subject: n.Subject,
		Type:    model.NotificationType,
		Text:    text.String(),
		HTML:    html.String(),
		To:      append([]string(nil), n.Recipients...),
	}, nil
}
