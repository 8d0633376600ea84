// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for optional settings
const (
	DefaultPort             = 4150
	DefaultContentDir       = "content"
	DefaultEmailFrom        = "Leads <onboarding@southwestvideo.example>"
	DefaultEmailTo          = "studio@southwestvideo.example"
	DefaultRateLimit        = 5
	DefaultRateLimitUnknown = 10
	DefaultRateWindowMs     = 60_000
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	ContentDir   string

	EmailFrom    string
	EmailTo      string
	ResendAPIKey string

	FormTokenSalt string
	AdminKeySalt  string
	IPHashSalt    string

	RateLimit        int
	RateLimitUnknown int
	RateLimitWindow  time.Duration

	PrintAdminKey bool
}

// ParseFlags validates flags and environment and returns the server config
func ParseFlags(args []string) (Config, error) {
	// Local development convenience; a missing .env is not an error
	godotenv.Load()

	var cfg Config
	var windowMs int

	fs := flag.NewFlagSet("southwest-video", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (empty disables the lead archive)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ContentDir, "c", "", "Content directory (empty disables content endpoints)")

	// Rate-limit policy
	fs.IntVar(&cfg.RateLimit, "rate-limit", 0, "Submissions per window per address")
	fs.IntVar(&cfg.RateLimitUnknown, "rate-limit-unknown", 0, "Shared limit for unresolvable addresses")
	fs.IntVar(&windowMs, "rate-window-ms", 0, "Rate-limit window in milliseconds")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.FormTokenSalt, "form-salt", "", "Form token salt (prefer env)")
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	fs.BoolVar(&cfg.PrintAdminKey, "print-admin-key", false, "Print the lead-archive admin key and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.ContentDir == "" {
		if dir, ok := os.LookupEnv("CONTENT_DIR"); ok {
			cfg.ContentDir = dir
		} else {
			cfg.ContentDir = DefaultContentDir
		}
	}

	cfg.EmailFrom = envDefault("EMAIL_FROM", DefaultEmailFrom)
	cfg.EmailTo = envDefault("EMAIL_TO", DefaultEmailTo)
	cfg.ResendAPIKey = os.Getenv("RESEND_API_KEY")

	if cfg.RateLimit == 0 {
		cfg.RateLimit = envInt("RATE_LIMIT", DefaultRateLimit)
	}
	if cfg.RateLimitUnknown == 0 {
		cfg.RateLimitUnknown = envInt("RATE_LIMIT_UNKNOWN", DefaultRateLimitUnknown)
	}
	if windowMs == 0 {
		windowMs = envInt("RATE_LIMIT_WINDOW_MS", DefaultRateWindowMs)
	}
	if cfg.RateLimit < 1 || cfg.RateLimitUnknown < 1 || windowMs < 1 {
		return Config{}, errors.New("rate-limit settings must be positive")
	}
	cfg.RateLimitWindow = time.Duration(windowMs) * time.Millisecond

	// Secrets - MUST be provided
	if cfg.FormTokenSalt == "" {
		cfg.FormTokenSalt = os.Getenv("FORM_TOKEN_SALT")
	}
	if cfg.FormTokenSalt == "" {
		return Config{}, errors.New("FORM_TOKEN_SALT required")
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
