package smtpeter

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is returned by a closed Sender.
var ErrClosed = errors.New("sender is closed")

// maxBodyInError bounds how much of an undecodable body APIError.Error prints.
const maxBodyInError = 256

// TransportError means the request never produced an HTTP response that
// could be read: it could not be built, sent, or its body could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("smtpeter: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-200 answer from the API. Payload holds the JSON the
// API returned; when the body was not JSON, Payload is nil and Body holds
// the raw bytes.
type APIError struct {
	StatusCode int
	Message    string
	Payload    json.RawMessage
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Payload == nil {
		return fmt.Sprintf("smtpeter: undecodable response (HTTP %d): %s", e.StatusCode, cut(e.Body))
	}
	if e.Message != "" {
		return fmt.Sprintf("smtpeter: send rejected (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("smtpeter: send rejected (HTTP %d): %s", e.StatusCode, cut(e.Payload))
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsRejected reports whether err carries an answer from the API.
func IsRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func cut(b []byte) string {
	if len(b) > maxBodyInError {
		return string(b[:maxBodyInError]) + "..."
	}
	return string(b)
}
