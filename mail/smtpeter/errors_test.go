package smtpeter

import (
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	err := &TransportError{Op: "post request", Err: assert.AnError}

	assert.Equal(t, "smtpeter: post request: "+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, IsTransport(err))
	assert.True(t, IsTransport(pkgerrors.Wrap(err, "wrapped")))
	assert.False(t, IsRejected(err))
	assert.False(t, IsTransport(assert.AnError))
}

func TestAPIError_Error(t *testing.T) {
	t.Run("payload without message", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Payload: []byte(`{"code":1}`)}
		assert.Equal(t, `smtpeter: send rejected (HTTP 400): {"code":1}`, err.Error())
	})

	t.Run("long body is cut", func(t *testing.T) {
		err := &APIError{StatusCode: 500, Body: []byte(strings.Repeat("x", maxBodyInError+10))}
		assert.True(t, strings.HasSuffix(err.Error(), "..."))
		assert.Less(t, len(err.Error()), maxBodyInError+64)
	})
}
