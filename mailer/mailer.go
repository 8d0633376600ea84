// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import "context"

// Message is one outbound notification email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Receipt identifies an accepted message at the transport.
type Receipt struct {
	ID string `json:"id"`
}

// Mailer hands a message to an outbound email transport. Implementations
// return an error for every failure mode (network, non-success response,
// malformed response) and never panic past this boundary.
type Mailer interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}
