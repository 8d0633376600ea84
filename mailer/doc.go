// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer formats and dispatches lead-notification email.

# Interface

Mailer is the single outbound seam:

	type Mailer interface {
		Send(ctx context.Context, msg Message) (*Receipt, error)
	}

Two implementations ship:

  - ResendClient: the Resend HTTP API with bearer auth and a 10s timeout.
    Network failures, non-success statuses, and malformed responses all come
    back as errors; nothing panics across the boundary.
  - Mock: records messages in memory and can be scripted to fail. Used in
    tests and when the server runs without RESEND_API_KEY.

# Lead Email

LeadEmail renders the notification body for a validated submission:

	msg, err := mailer.LeadEmail(sub, cfg.EmailFrom, cfg.EmailTo)
	receipt, err := m.Send(ctx, msg)

The body is built with html/template, so every user-supplied field is
entity-escaped before interpolation. reply_to is set to the submitter's
address so the studio can answer the lead directly.
*/
package mailer
