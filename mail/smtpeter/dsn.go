package smtpeter

import (
	"slices"
	"strings"
)

// Return controls how much of a bounced message is returned in a DSN.
type Return string

// Notify is a delivery status notification type.
type Notify string

const (
	ReturnFull    Return = "FULL"
	ReturnHeaders Return = "HDRS"

	// NotifyNever suppresses every other notification type.
	NotifyNever   Notify = "NEVER"
	NotifyFailure Notify = "FAILURE"
	NotifySuccess Notify = "SUCCESS"
	NotifyDelay   Notify = "DELAY"
)

// dsn holds the delivery status notification options of a request.
type dsn struct {
	Orcpt  *string `json:"orcpt,omitzero"`
	Ret    *Return `json:"ret,omitzero"`
	Notify *string `json:"notify,omitzero"`
}

// joinNotify renders notification types the way the API expects them:
// NEVER alone, or the given types joined by commas in call order.
func joinNotify(types []Notify) string {
	if slices.Contains(types, NotifyNever) {
		return string(NotifyNever)
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
