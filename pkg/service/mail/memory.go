package mail

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/model"
)

// Memory records messages instead of delivering them. Used in tests and
// when no mail backend is configured.
type Memory struct {
	mu       sync.Mutex
	messages []*model.Message
}

// NewMemory creates a new in-memory mailer
func NewMemory() *Memory {
	return &Memory{}
}

// Send records the message
func (m *Memory) Send(ctx context.Context, msg *model.Message) error {
	if msg == nil {
		return goerr.New("message is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)

	ctxlog.From(ctx).Info("Email recorded (no mail backend configured)",
		"subject", msg.Subject,
		"recipients", msg.To,
	)
	return nil
}

// Messages returns a copy of the recorded messages
func (m *Memory) Messages() []*model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Message(nil), m.messages...)
}
