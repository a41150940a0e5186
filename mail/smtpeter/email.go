package smtpeter

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Email accumulates a single send request. Only fields that were set are
// serialized. An Email must not be mutated concurrently.
type Email struct {
	data payload
}

type payload struct {
	Envelope     *string  `json:"envelope,omitzero"`
	Subject      *string  `json:"subject,omitzero"`
	Text         *string  `json:"text,omitzero"`
	HTML         *string  `json:"html,omitzero"`
	From         *string  `json:"from,omitzero"`
	Recipients   []string `json:"recipients,omitzero"`
	To           []string `json:"to,omitzero"`
	Cc           []string `json:"cc,omitzero"`
	DSN          *dsn     `json:"dsn,omitzero"`
	InlineCSS    *bool    `json:"inlinecss,omitzero"`
	TrackClicks  *bool    `json:"trackclicks,omitzero"`
	TrackBounces *bool    `json:"trackbounces,omitzero"`
	TrackOpens   *bool    `json:"trackopens,omitzero"`
}

// NewEmail returns an empty request.
func NewEmail() *Email {
	return &Email{}
}

// SetEnvelope sets the SMTP envelope sender.
func (e *Email) SetEnvelope(envelope string) *Email {
	e.data.Envelope = &envelope
	return e
}

func (e *Email) SetSubject(subject string) *Email {
	e.data.Subject = &subject
	return e
}

// SetText sets the plain text body.
func (e *Email) SetText(text string) *Email {
	e.data.Text = &text
	return e
}

// SetHTML sets the HTML body.
func (e *Email) SetHTML(html string) *Email {
	e.data.HTML = &html
	return e
}

// SetFrom sets the From header address.
func (e *Email) SetFrom(from string) *Email {
	e.data.From = &from
	return e
}

// SetRecipients replaces the envelope recipient list. It is independent
// of the To and Cc headers.
func (e *Email) SetRecipients(addresses ...string) *Email {
	e.data.Recipients = cloneList(addresses)
	return e
}

// AppendRecipients adds addresses to the end of the recipient list,
// starting a new list when none was set. Duplicates are kept.
func (e *Email) AppendRecipients(addresses ...string) *Email {
	if e.data.Recipients == nil {
		e.data.Recipients = make([]string, 0, len(addresses))
	}
	e.data.Recipients = append(e.data.Recipients, addresses...)
	return e
}

// SetTo replaces the To addresses.
func (e *Email) SetTo(addresses ...string) *Email {
	e.data.To = cloneList(addresses)
	return e
}

// SetCc replaces the Cc addresses.
func (e *Email) SetCc(addresses ...string) *Email {
	e.data.Cc = cloneList(addresses)
	return e
}

// SetOriginalRecipient sets the DSN original recipient (ORCPT).
func (e *Email) SetOriginalRecipient(recipient string) *Email {
	e.ensureDSN().Orcpt = &recipient
	return e
}

// SetNotifications sets the DSN notification types. NotifyNever negates
// every other type passed with it.
func (e *Email) SetNotifications(types ...Notify) *Email {
	notify := joinNotify(types)
	e.ensureDSN().Notify = &notify
	return e
}

// SetReturn sets how much of a bounced message the DSN carries.
func (e *Email) SetReturn(ret Return) *Email {
	e.ensureDSN().Ret = &ret
	return e
}

func (e *Email) SetInlineCSS(inline bool) *Email {
	e.data.InlineCSS = &inline
	return e
}

func (e *Email) SetTrackClicks(track bool) *Email {
	e.data.TrackClicks = &track
	return e
}

func (e *Email) SetTrackBounces(track bool) *Email {
	e.data.TrackBounces = &track
	return e
}

func (e *Email) SetTrackOpens(track bool) *Email {
	e.data.TrackOpens = &track
	return e
}

// MarshalJSON implements json.Marshaler.
func (e *Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(&e.data)
}

// JSON returns the body that Client.Send would post for e.
func (e *Email) JSON() (string, error) {
	b, err := json.Marshal(&e.data)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal email")
	}
	return string(b), nil
}

func (e *Email) ensureDSN() *dsn {
	if e.data.DSN == nil {
		e.data.DSN = &dsn{}
	}
	return e.data.DSN
}

// recipientCount is the number of addresses across all address lists.
func (e *Email) recipientCount() int {
	return len(e.data.Recipients) + len(e.data.To) + len(e.data.Cc)
}

// cloneList keeps a copy so callers can reuse their slice. The result is
// never nil, so an explicitly empty list is still serialized.
func cloneList(addresses []string) []string {
	return append(make([]string, 0, len(addresses)), addresses...)
}
