// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks contact-form fields against their declared constraints.

# Usage

Fields takes a trimmed Submission and returns every violation at once:

	if fieldErrors := validate.Fields(sub); fieldErrors != nil {
		// fieldErrors maps field name -> human-readable message
	}

A nil return means all fields passed.

# Rules

  - name: required, 2-100 characters, letters/spaces/hyphens/apostrophes/periods
  - email: required, at most 254 characters, structural local@domain format
  - projectType: required, member of models.ProjectTypes
  - projectBudget: required, member of models.BudgetRanges
  - vision: required, 10-2000 characters

Errors are collected, not fail-fast, so the caller can surface every problem
in one round trip. Validation never mutates the submission and performs no
HTML sanitization; escaping is the mailer's concern.
*/
package validate
