// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package botcheck classifies contact-form submissions as human or automated.

# Heuristics

Three checks run in fixed order; the first hit classifies the submission:

 1. Honeypots: the website, phone, and company fields are invisible to
    humans. Any non-empty value is an immediate bot classification.
 2. Timing: a submission arriving less than 2000ms after the reported
    form-load timestamp is too fast for a human. The boundary is inclusive:
    exactly 2000ms passes.
 3. Token shape: the optional formToken must be the server-issued HMAC token
    (see the auth package) or match the legacy client-side base36 shape.
    A present-but-malformed token fails; an absent token never does.

# Usage

	checker := botcheck.New(cfg.FormTokenSalt, nil)
	if res := checker.Check(sub); res.IsBot {
		// res.Reason is for server-side logs only
	}

The clock is injectable so timing tests are deterministic:

	checker := botcheck.New(salt, func() time.Time { return fixed })

Reasons are logged, never returned to the caller; the pipeline surfaces a
generic rejection so adversaries cannot tune around a specific heuristic.
*/
package botcheck
