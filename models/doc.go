// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON or form bodies:

  - ContactRequest: contact form fields plus honeypots, formTimestamp, formToken
  - Submission: trimmed immutable capture of a ContactRequest

# Response Types

Types for JSON responses:

  - ContactSuccessResponse: message
  - FormMetaResponse: formTimestamp, formToken
  - LeadListResponse: leads, count
  - ErrorResponse: error, optional fieldErrors

# Domain Types

Internal data structures:

  - SubmissionOutcome: terminal pipeline result (status, message, field errors)
  - Lead: archived accepted submission (IP hash and user agent never serialized)
  - PortfolioProject: front-matter portfolio entry
  - Testimonial: front-matter client testimonial

# Constants

Outcome status values:

	StatusAccepted               = "accepted"
	StatusRejectedValidation     = "rejected-validation"
	StatusRejectedBot            = "rejected-bot"
	StatusRejectedRateLimited    = "rejected-rate-limited"
	StatusRejectedDispatchFailed = "rejected-dispatch-failed"

Honeypot field names:

	HoneypotWebsite = "website"
	HoneypotPhone   = "phone"
	HoneypotCompany = "company"

Form enums:

	ProjectTypes — selectable project categories
	BudgetRanges — selectable budget brackets
*/
package models
