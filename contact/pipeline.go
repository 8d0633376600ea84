// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contact

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/botcheck"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/mailer"
	"github.com/danielhkuo/southwest-video/models"
	"github.com/danielhkuo/southwest-video/ratelimit"
	"github.com/danielhkuo/southwest-video/validate"
)

// User-facing outcome messages. Bot and dispatch messages stay generic so
// nothing about the internals leaks to the caller.
const (
	msgAccepted       = "Success! Your brief has been sent. I will review it and reply within 1 business day."
	msgValidation     = "Please correct the errors below and try again."
	msgBot            = "Invalid submission. Please try again."
	msgRateLimited    = "Too many requests. Please wait a moment and try again."
	msgDispatchFailed = "Failed to send your brief. Please try again or contact us directly."
	msgInternal       = "A technical error occurred. Please try again or contact us directly if the problem persists."
)

// Config carries the pipeline's policy knobs; all values come from the
// environment, never read here directly.
type Config struct {
	EmailFrom string
	EmailTo   string

	RateLimit        int
	RateLimitUnknown int
	RateLimitWindow  time.Duration

	FormTokenSalt string
	IPHashSalt    string
}

// Pipeline sequences rate limiting, validation, bot heuristics, and
// dispatch for one submission at a time. It owns no persistent state beyond
// what it threads through to the rate limiter and lead store.
type Pipeline struct {
	cfg     Config
	limiter *ratelimit.Limiter
	checker *botcheck.Checker
	mail    mailer.Mailer
	leads   db.LeadStore // nil disables archiving
	now     func() time.Time
}

// New wires a pipeline. leads may be nil; a nil clock defaults to time.Now.
func New(cfg Config, limiter *ratelimit.Limiter, mail mailer.Mailer, leads db.LeadStore, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:     cfg,
		limiter: limiter,
		checker: botcheck.New(cfg.FormTokenSalt, now),
		mail:    mail,
		leads:   leads,
		now:     now,
	}
}

// Process runs one submission through the pipeline and always returns a
// terminal outcome; it never panics past this boundary. Steps execute
// strictly in order: rate limit, validate, bot check, dispatch.
func (p *Pipeline) Process(ctx context.Context, clientIP, userAgent string, req models.ContactRequest) (outcome models.SubmissionOutcome) {
	sub := Normalize(req)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("contact pipeline panic", "panic", r)
			outcome = models.SubmissionOutcome{
				Status:  models.StatusRejectedDispatchFailed,
				Message: msgInternal,
			}
			p.logOutcome(sub, outcome, "panic")
		}
	}()

	// 1. Rate limit before any other work; throttled callers learn nothing
	// about their field errors.
	identifier, limit := clientIP, p.cfg.RateLimit
	if identifier == "" {
		identifier, limit = ratelimit.UnknownIdentifier, p.cfg.RateLimitUnknown
	}
	if limited, _ := p.limiter.Check(identifier, limit, p.cfg.RateLimitWindow); limited {
		outcome = models.SubmissionOutcome{
			Status:  models.StatusRejectedRateLimited,
			Message: msgRateLimited,
		}
		p.logOutcome(sub, outcome, "rate limited")
		return outcome
	}

	// 2. Field validation, all errors collected
	if fieldErrors := validate.Fields(sub); fieldErrors != nil {
		outcome = models.SubmissionOutcome{
			Status:      models.StatusRejectedValidation,
			Message:     msgValidation,
			FieldErrors: fieldErrors,
		}
		p.logOutcome(sub, outcome, "validation failed")
		return outcome
	}

	// 3. Bot heuristics; the reason stays server-side
	if res := p.checker.Check(sub); res.IsBot {
		outcome = models.SubmissionOutcome{
			Status:  models.StatusRejectedBot,
			Message: msgBot,
		}
		p.logOutcome(sub, outcome, res.Reason)
		return outcome
	}

	// 4. Dispatch
	msg, err := mailer.LeadEmail(sub, p.cfg.EmailFrom, p.cfg.EmailTo)
	if err == nil {
		_, err = p.mail.Send(ctx, msg)
	}
	if err != nil {
		slog.Error("lead dispatch failed", "error", err)
		outcome = models.SubmissionOutcome{
			Status:  models.StatusRejectedDispatchFailed,
			Message: msgDispatchFailed,
		}
		p.logOutcome(sub, outcome, "dispatch failed")
		return outcome
	}

	p.archive(ctx, sub, clientIP, userAgent)

	outcome = models.SubmissionOutcome{
		Status:  models.StatusAccepted,
		Message: msgAccepted,
	}
	p.logOutcome(sub, outcome, "")
	return outcome
}

// archive stores the accepted lead. Failure here is logged only; the brief
// already reached the studio inbox.
func (p *Pipeline) archive(ctx context.Context, sub models.Submission, clientIP, userAgent string) {
	if p.leads == nil {
		return
	}

	lead := models.Lead{
		ID:            uuid.NewString(),
		Name:          sub.Name,
		Email:         sub.Email,
		ProjectType:   sub.ProjectType,
		ProjectBudget: sub.ProjectBudget,
		Vision:        sub.Vision,
		UserAgent:     userAgent,
		CreatedAt:     p.now().UTC(),
	}
	if clientIP != "" {
		lead.IPHash = auth.HashIP(clientIP, p.cfg.IPHashSalt)
	}

	if err := p.leads.Insert(ctx, lead); err != nil {
		slog.Error("failed to archive lead", "error", err, "lead_id", lead.ID)
	}
}

// logOutcome records the terminal state of a submission. Name, email, and
// vision are personally identifying and never logged.
func (p *Pipeline) logOutcome(sub models.Submission, outcome models.SubmissionOutcome, errCode string) {
	slog.Info("contact form submission",
		"success", outcome.Accepted(),
		"status", outcome.Status,
		"project_type", sub.ProjectType,
		"budget_range", sub.ProjectBudget,
		"error_code", errCode,
	)
}

// Normalize trims a raw request into an immutable Submission. The
// timestamp parses to zero when absent or malformed, which the timing
// heuristic treats as an old form load.
func Normalize(req models.ContactRequest) models.Submission {
	tsMs, _ := strconv.ParseInt(strings.TrimSpace(req.FormTimestamp), 10, 64)
	if tsMs < 0 {
		tsMs = 0
	}

	return models.Submission{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		ProjectType:   strings.TrimSpace(req.ProjectType),
		ProjectBudget: strings.TrimSpace(req.ProjectBudget),
		Vision:        strings.TrimSpace(req.Vision),
		Honeypots: map[string]string{
			models.HoneypotWebsite: strings.TrimSpace(req.Website),
			models.HoneypotPhone:   strings.TrimSpace(req.Phone),
			models.HoneypotCompany: strings.TrimSpace(req.Company),
		},
		FormTimestampMs: tsMs,
		FormToken:       strings.TrimSpace(req.FormToken),
	}
}
