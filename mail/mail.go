package mail

import (
	"context"
	"io"
	netmail "net/mail"
)

// Sender delivers emails through a mail provider.
type Sender interface {
	Send(ctx context.Context, emails ...Email) error
	io.Closer
}

// Email represents an email message.
type Email struct {
	// Envelope sender, when it differs from From (optional)
	Envelope string

	From    Address
	To      []Address
	Cc      []Address
	Bcc     []Address
	Subject string

	// Body
	Body string // Plain text body
	HTML string // HTML body (optional)
}

// Address represents an email address.
type Address struct {
	Name    string // "John Doe"
	Address string // "john@example.com"
}

// String formats the address for a header, quoting the name when needed.
// An address without a name is returned as is.
func (a Address) String() string {
	if a.Name == "" {
		return a.Address
	}
	return (&netmail.Address{Name: a.Name, Address: a.Address}).String()
}
