package interfaces

import (
	"context"

	"github.com/orgward/knock/pkg/domain/model"
)

// Mailer sends a built email message to its recipients
type Mailer interface {
	Send(ctx context.Context, msg *model.Message) error
}

// Notifier posts a short out-of-band notification (e.g. to a Slack
// channel). Implementations are best-effort; failures are logged, not
// surfaced.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
