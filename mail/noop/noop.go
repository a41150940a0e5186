package noop

import (
	"context"
	"sync"

	"github.com/pure-golang/smtpeter/mail"
)

var _ mail.Sender = (*Sender)(nil)

// Sender keeps emails in memory instead of delivering them. Use it in tests.
type Sender struct {
	mx     sync.Mutex
	sent   []mail.Email
	closed bool
}

// NewSender creates a new no-op Sender.
func NewSender() *Sender {
	return &Sender{}
}

// Send records emails. It still accepts emails after Close.
func (n *Sender) Send(ctx context.Context, emails ...mail.Email) error {
	n.mx.Lock()
	defer n.mx.Unlock()

	n.sent = append(n.sent, emails...)
	return nil
}

// Sent returns a copy of every email passed to Send.
func (n *Sender) Sent() []mail.Email {
	n.mx.Lock()
	defer n.mx.Unlock()

	return append([]mail.Email(nil), n.sent...)
}

// Close is a no-op.
func (n *Sender) Close() error {
	n.mx.Lock()
	defer n.mx.Unlock()

	n.closed = true
	return nil
}
