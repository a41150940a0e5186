// Package encoders converts request values into wire bodies.
package encoders

// Encoder converts a value to bytes and reports the matching content type.
type Encoder interface {
	Encode(v any) ([]byte, error)
	ContentType() string
}
