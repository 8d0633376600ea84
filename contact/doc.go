// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package contact orchestrates the lead-submission pipeline.

# Pipeline Order

One submission runs through four steps, terminal on the first hit:

 1. Rate limit by caller IP (unknown callers share one higher-limit bucket).
    Throttled callers get no validation feedback.
 2. Field validation, every error collected in one pass.
 3. Bot heuristics (honeypots, timing, token). The rejection message is
    generic; the firing heuristic is only logged.
 4. Notification dispatch through the configured Mailer, then optional lead
    archiving.

# Outcomes

Process is a total function from submission to SubmissionOutcome:

	outcome := pipeline.Process(ctx, clientIP, userAgent, req)

Statuses map to HTTP codes in the handler layer: accepted -> 200,
rejected-validation and rejected-bot -> 400, rejected-rate-limited -> 429,
rejected-dispatch-failed -> 500. Panics are recovered at the boundary,
logged with detail, and surfaced as a generic failure.

# Logging

Every terminal outcome logs success, status, project type, budget range,
and an error code. Name, email, and vision are deliberately excluded to
keep personal data out of log retention.

# Failure Model

A submission that passes checks but fails dispatch is not retried and not
archived; the caller resubmits. Archive failures after a successful dispatch
are logged only.
*/
package contact
