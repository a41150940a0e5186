package encoders

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var _ Encoder = JSON{}

type JSON struct{}

func (JSON) Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	return b, errors.Wrapf(err, "marshal %T", v)
}

func (JSON) ContentType() string {
	return "application/json"
}
