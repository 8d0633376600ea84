// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv); real
environment variables win over .env entries.

# Config Fields

  - Port: server listen port (default: 4150)
  - DatabaseURL / DatabaseType: lead-archive database; empty URL disables
    archiving (types: sqlite, postgres)
  - ContentDir: front-matter content directory (default: content)
  - EmailFrom / EmailTo / ResendAPIKey: outbound notification settings;
    a missing API key switches dispatch to the mock mailer
  - FormTokenSalt / AdminKeySalt / IPHashSalt: required secrets
  - RateLimit / RateLimitUnknown / RateLimitWindow: submission throttling

# CLI Flags

	-p                  Server port
	-d                  Database URL
	-t                  Database type (sqlite or postgres)
	-c                  Content directory
	-rate-limit         Submissions per window per address
	-rate-limit-unknown Shared limit for unresolvable addresses
	-rate-window-ms     Rate-limit window in milliseconds
	-form-salt          Form token salt
	-admin-salt         Admin key salt
	-ip-salt            IP hash salt
	-print-admin-key    Print the lead-archive admin key and exit

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	CONTENT_DIR          → -c
	RATE_LIMIT           → -rate-limit
	RATE_LIMIT_UNKNOWN   → -rate-limit-unknown
	RATE_LIMIT_WINDOW_MS → -rate-window-ms
	FORM_TOKEN_SALT      → -form-salt
	ADMIN_KEY_SALT       → -admin-salt
	IP_HASH_SALT         → -ip-salt
	EMAIL_FROM, EMAIL_TO, RESEND_API_KEY (env only)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - FORM_TOKEN_SALT must be provided
  - ADMIN_KEY_SALT must be provided
  - IP_HASH_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - rate-limit settings must be positive
*/
package cliparse
