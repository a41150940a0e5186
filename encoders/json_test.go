package encoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Encode(t *testing.T) {
	b, err := JSON{}.Encode(map[string]any{"subject": "Hi", "trackopens": true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"subject":"Hi","trackopens":true}`, string(b))
}

func TestJSON_Encode_Unsupported(t *testing.T) {
	_, err := JSON{}.Encode(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal chan int")
}

func TestJSON_ContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSON{}.ContentType())
}
