// Package smtpeter sends email through the SMTPeter REST API.
//
// A request is composed with the Email builder and posted by a Client:
//
//	client := smtpeter.NewClient(smtpeter.Config{Token: token}, nil)
//	res, err := client.Send(ctx, smtpeter.NewEmail().
//		SetFrom("a@x.com").
//		SetTo("b@y.com").
//		SetSubject("Hi").
//		SetText("Hello"))
//
// err is non-nil only when no answer could be read from the API. Otherwise
// res tells whether the email was accepted, rejected with a JSON payload, or
// answered with a body that is not JSON.
package smtpeter

import (
	"time"

	"github.com/pkg/errors"

	"github.com/pure-golang/smtpeter/env"
)

// DefaultBaseURL is the public SMTPeter API.
const DefaultBaseURL = "https://www.smtpeter.com"

// Config contains SMTPeter API parameters.
type Config struct {
	Token   string        `envconfig:"SMTPETER_TOKEN" required:"true"`                       // REST API access token
	BaseURL string        `envconfig:"SMTPETER_BASE_URL" default:"https://www.smtpeter.com"` // scheme and host, no path
	Timeout time.Duration `envconfig:"SMTPETER_TIMEOUT" default:"0s"`                        // per call, 0 disables
}

// NewDefault creates a Client from environment variables (and .env).
func NewDefault() (*Client, error) {
	var cfg Config
	if err := env.InitConfig(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to init smtpeter config")
	}
	return NewClient(cfg, nil), nil
}
