// Package channel delivers rendered invitation and notification email
// through an external provider.
package channel

import (
	"context"
	"time"
)

// Message is one rendered email ready for delivery.
type Message struct {
	To        string
	FromName  string
	FromEmail string
	ReplyTo   string
	Subject   string
	TextBody  string
	// RunID tags the message with the dispatch run that produced it.
	RunID string
}

// SendResult is the outcome of one delivery attempt.
type SendResult struct {
	Success   bool
	MessageID string
	Error     error
	SentAt    time.Time
}

// Sender delivers a single message. Implementations must not retry
// internally beyond transport-level retries; batch-level policy belongs
// to the caller.
type Sender interface {
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}
