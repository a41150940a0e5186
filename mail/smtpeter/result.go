package smtpeter

import (
	"encoding/json"
	"net/http"
)

// Outcome tells how the API answered a send request.
type Outcome int

const (
	// OutcomeSent means the API answered 200.
	OutcomeSent Outcome = iota + 1
	// OutcomeRejected means a non-200 answer with a JSON body.
	OutcomeRejected
	// OutcomeUndecodable means a non-200 answer whose body is not JSON.
	OutcomeUndecodable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeRejected:
		return "rejected"
	case OutcomeUndecodable:
		return "undecodable"
	default:
		return "unknown"
	}
}

// Result is the answer to one Client.Send call. It is the zero value
// whenever Send also returns an error.
type Result struct {
	Outcome    Outcome
	StatusCode int
	// Message is the "error" string of a rejection payload, if any.
	Message string
	// Payload is the JSON body of a rejection, as returned by the API.
	Payload json.RawMessage
	// Body is the raw body of an undecodable answer.
	Body []byte
}

// OK reports whether the API accepted the email.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSent
}

// Err returns nil for an accepted email and an *APIError otherwise.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeSent:
		return nil
	case OutcomeRejected:
		return &APIError{StatusCode: r.StatusCode, Message: r.Message, Payload: r.Payload}
	default:
		return &APIError{StatusCode: r.StatusCode, Body: r.Body}
	}
}

// interpret maps a status code and body to a Result.
func interpret(status int, body []byte) Result {
	if status == http.StatusOK {
		return Result{Outcome: OutcomeSent, StatusCode: status}
	}
	if !json.Valid(body) {
		return Result{Outcome: OutcomeUndecodable, StatusCode: status, Body: body}
	}

	res := Result{Outcome: OutcomeRejected, StatusCode: status, Payload: json.RawMessage(body)}
	var msg struct {
		Error string `json:"error"`
	}
	// Any JSON is accepted; the message is only picked when it is a string.
	if err := json.Unmarshal(body, &msg); err == nil {
		res.Message = msg.Error
	}
	return res
}
