// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Southwest Videography API server.

The server backs a videography marketing site: it accepts project briefs
from the contact form, screens them for bots and abuse, emails accepted
leads to the studio inbox, and serves the site's portfolio and
testimonial content as JSON.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	FORM_TOKEN_SALT=... ADMIN_KEY_SALT=... IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 4150 -c ./content -form-salt ... -admin-salt ... -ip-salt ...

# Configuration

Required settings:

  - FORM_TOKEN_SALT (-form-salt): Secret for form token HMAC
  - ADMIN_KEY_SALT (-admin-salt): Secret for the lead-archive admin key
  - IP_HASH_SALT (-ip-salt): Secret for hashing client addresses at rest

Optional settings:

  - PORT (-p): Server port (default: 4150)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string;
    empty disables the lead archive
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - CONTENT_DIR (-c): Markdown content directory (default: content)
  - RESEND_API_KEY: Outbound email credential; empty uses a mock mailer
  - EMAIL_FROM, EMAIL_TO: Lead notification addresses
  - RATE_LIMIT, RATE_LIMIT_UNKNOWN, RATE_LIMIT_WINDOW_MS: Abuse policy

Run with -print-admin-key to print the X-Admin-Key value that unlocks
GET /api/leads, then exit.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (contact, content, leads)
  - contact: Submission pipeline (rate limit, validate, bot check, dispatch)
  - validate: Field validation rules
  - botcheck: Honeypot, timing, and token heuristics
  - ratelimit: Fixed-window per-address limiter
  - mailer: Resend email client and lead notification template
  - content: Markdown front-matter content store
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token and key generation
  - db: Lead archive schema and queries
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
