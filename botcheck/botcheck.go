// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package botcheck

import (
	"regexp"
	"time"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/models"
)

// MinSubmissionTime is the shortest interval a human plausibly needs to
// complete the multi-field form. Autofill users can trip this; that is an
// accepted trade-off.
const MinSubmissionTime = 2000 * time.Millisecond

// Legacy client-generated tokens are base36 fragments of 8-16 characters
var legacyTokenPattern = regexp.MustCompile(`^[a-z0-9]{8,16}$`)

// Result carries the classification of a single submission.
type Result struct {
	IsBot  bool
	Reason string // internal only, never sent to the caller
}

// Checker classifies submissions as human or automated. The zero value is
// not usable; construct with New.
type Checker struct {
	minSubmissionTime time.Duration
	tokenSalt         string
	now               func() time.Time
}

// New returns a Checker with the given token salt and clock. A nil clock
// defaults to time.Now.
func New(tokenSalt string, now func() time.Time) *Checker {
	if now == nil {
		now = time.Now
	}
	return &Checker{
		minSubmissionTime: MinSubmissionTime,
		tokenSalt:         tokenSalt,
		now:               now,
	}
}

// Check runs the heuristics in fixed order: honeypots, timing, token shape.
// The first hit wins.
func (c *Checker) Check(s models.Submission) Result {
	// Honeypots are invisible to humans; any value means automation
	for _, field := range []string{models.HoneypotWebsite, models.HoneypotPhone, models.HoneypotCompany} {
		if s.Honeypots[field] != "" {
			return Result{IsBot: true, Reason: "honeypot:" + field}
		}
	}

	// A missing or unparseable timestamp yields zero, which reads as a very
	// old form load and passes. Only a parsed, too-recent timestamp trips.
	if s.FormTimestampMs > 0 {
		elapsed := c.now().Sub(time.UnixMilli(s.FormTimestampMs))
		if elapsed < c.minSubmissionTime {
			return Result{IsBot: true, Reason: "too fast"}
		}
	}

	// The token is optional. When present it must be the server-issued HMAC
	// token for the submitted timestamp, or at least match the legacy
	// client-side shape. A present-but-malformed token is an automation tell.
	if s.FormToken != "" {
		if auth.ValidateFormToken(s.FormTimestampMs, s.FormToken, c.tokenSalt) == nil {
			return Result{}
		}
		if !legacyTokenPattern.MatchString(s.FormToken) {
			return Result{IsBot: true, Reason: "bad token"}
		}
	}

	return Result{}
}
