// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and validation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(auth.LeadArchiveKeyID, salt)
	err := auth.ValidateAdminKey(auth.LeadArchiveKeyID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same subject and salt always produce the same key. This allows validation
without storing the key anywhere; run the server with -print-admin-key to
obtain it for a given salt.

# Form Tokens

Form tokens bind a contact-form render to its load timestamp:

	token := auth.GenerateFormToken(formTimestampMs, salt)
	err := auth.ValidateFormToken(formTimestampMs, token, salt)

The token is served by GET /api/contact/form-meta and checked by the bot
heuristics on submission. Validation is constant-time.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving lead archiving:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
