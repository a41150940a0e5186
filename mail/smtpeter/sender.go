package smtpeter

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/pure-golang/smtpeter/mail"
)

var _ mail.Sender = (*Sender)(nil)

// Sender implements mail.Sender on top of a Client. Emails the API does
// not accept are reported as *APIError.
type Sender struct {
	mx     sync.RWMutex
	client *Client
	closed bool
}

// NewSender creates a Sender that posts through client.
func NewSender(client *Client) *Sender {
	return &Sender{client: client}
}

// Send posts the emails one by one and stops at the first failure.
func (s *Sender) Send(ctx context.Context, emails ...mail.Email) error {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if s.closed {
		return ErrClosed
	}

	for i, email := range emails {
		res, err := s.client.Send(ctx, FromMail(email))
		if err != nil {
			return errors.Wrapf(err, "failed to send email %d", i)
		}
		if err := res.Err(); err != nil {
			return errors.Wrapf(err, "email %d not accepted", i)
		}
	}
	return nil
}

// Close marks the sender closed. It is safe to call more than once.
func (s *Sender) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.closed = true
	return nil
}

// FromMail converts a provider-neutral email into a request. Bcc addresses
// only exist on the envelope, so when there are any, every address is
// listed as an envelope recipient.
func FromMail(m mail.Email) *Email {
	e := NewEmail()

	if m.Envelope != "" {
		e.SetEnvelope(m.Envelope)
	}
	if m.From.Address != "" {
		e.SetFrom(m.From.String())
	}
	if len(m.To) > 0 {
		e.SetTo(formatList(m.To)...)
	}
	if len(m.Cc) > 0 {
		e.SetCc(formatList(m.Cc)...)
	}
	if len(m.Bcc) > 0 {
		e.SetRecipients(addressList(m.To)...).
			AppendRecipients(addressList(m.Cc)...).
			AppendRecipients(addressList(m.Bcc)...)
	}
	if m.Subject != "" {
		e.SetSubject(m.Subject)
	}
	if m.Body != "" {
		e.SetText(m.Body)
	}
	if m.HTML != "" {
		e.SetHTML(m.HTML)
	}

	return e
}

func formatList(addrs []mail.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func addressList(addrs []mail.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Address
	}
	return out
}
