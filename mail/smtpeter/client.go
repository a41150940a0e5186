package smtpeter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/pure-golang/smtpeter/encoders"
	"github.com/pure-golang/smtpeter/logger"
)

const sendPath = "/v1/send"

// Client posts emails to the SMTPeter REST API. It keeps no per-call state
// and may be shared between goroutines.
type Client struct {
	cfg        Config
	endpoint   string
	httpClient *http.Client
	encoder    encoders.Encoder
	logger     *slog.Logger
}

// ClientOptions contains optional dependencies of a Client.
type ClientOptions struct {
	// HTTPClient replaces http.DefaultClient.
	HTTPClient *http.Client
	// Logger is used instead of the logger carried by the call context.
	Logger *slog.Logger
}

// NewClient creates a Client. options may be nil.
func NewClient(cfg Config, options *ClientOptions) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{
		cfg:      cfg,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + sendPath,
		encoder:  encoders.JSON{},
	}
	if options != nil {
		c.httpClient = options.HTTPClient
		c.logger = options.Logger
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c
}

// Send posts email and waits for the answer. A non-nil error is always a
// *TransportError; any answer the API gave, including a rejection, is
// reported through Result.
func (c *Client) Send(ctx context.Context, email *Email) (Result, error) {
	if email == nil {
		email = NewEmail()
	}

	ctx, span := tracer.Start(ctx, "SMTPeter.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("smtpeter.endpoint", c.endpoint),
		attribute.Int("smtpeter.recipients_count", email.recipientCount()),
	)

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := c.send(ctx, email)
	elapsed := time.Since(start)

	log := c.log(ctx).With("endpoint", c.endpoint, "duration", elapsed)
	if err != nil {
		recordSend(outcomeTransportError, elapsed.Seconds())
		recordError(span, err)
		log.Warn("smtpeter send failed", "error", err.Error())
		return Result{}, err
	}

	recordSend(res.Outcome.String(), elapsed.Seconds())
	span.SetAttributes(
		attribute.Int("http.response.status", res.StatusCode),
		attribute.String("smtpeter.outcome", res.Outcome.String()),
	)

	if !res.OK() {
		apiErr := res.Err()
		span.SetStatus(codes.Error, apiErr.Error())
		log.Warn("smtpeter send rejected", "status", res.StatusCode, "outcome", res.Outcome.String(), "error", apiErr.Error())
		return res, nil
	}

	span.SetStatus(codes.Ok, "")
	log.Debug("smtpeter send accepted")
	return res, nil
}

func (c *Client) send(ctx context.Context, email *Email) (Result, error) {
	body, err := c.encoder.Encode(email)
	if err != nil {
		return Result{}, &TransportError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendURL(), bytes.NewReader(body))
	if err != nil {
		return Result{}, &TransportError{Op: "build request", Err: c.redact(err)}
	}
	req.Header.Set("Content-Type", c.encoder.ContentType())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, &TransportError{Op: "post request", Err: c.redact(err)}
	}
	defer func() {
		// The answer has been read or is irrelevant at this point.
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return interpret(resp.StatusCode, nil), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Op: "read response", Err: errors.Wrapf(err, "HTTP %d", resp.StatusCode)}
	}

	return interpret(resp.StatusCode, raw), nil
}

// sendURL is the endpoint with the access token attached.
func (c *Client) sendURL() string {
	return c.endpoint + "?access_token=" + url.QueryEscape(c.cfg.Token)
}

// redact strips the access token from URLs embedded in net/http errors.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.endpoint
	}
	return err
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.FromContext(ctx)
}
