// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Submission outcome status constants
const (
	StatusAccepted               = "accepted"
	StatusRejectedValidation     = "rejected-validation"
	StatusRejectedBot            = "rejected-bot"
	StatusRejectedRateLimited    = "rejected-rate-limited"
	StatusRejectedDispatchFailed = "rejected-dispatch-failed"
)

// Honeypot field names rendered invisibly on the contact form.
// Any non-empty value marks the submission as automated.
const (
	HoneypotWebsite = "website"
	HoneypotPhone   = "phone"
	HoneypotCompany = "company"
)

// ProjectTypes are the selectable project categories on the contact form.
var ProjectTypes = []string{
	"Corporate Film",
	"Live Event Coverage",
	"Marketing Video (Social/Web)",
	"Commercial/Ad",
	"Wedding",
	"Other",
}

// BudgetRanges are the selectable budget brackets on the contact form.
var BudgetRanges = []string{
	"Under £500",
	"£500 - £2k",
	"£2k - £5k",
	"£5k+",
}

// Request types

type ContactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ProjectType   string `json:"projectType"`
	ProjectBudget string `json:"projectBudget"`
	Vision        string `json:"vision"`

	// Bot-detection fields
	Website       string `json:"website"`       // honeypot
	Phone         string `json:"phone"`         // honeypot
	Company       string `json:"company"`       // honeypot
	FormTimestamp string `json:"formTimestamp"` // epoch ms the form became interactive
	FormToken     string `json:"formToken"`     // optional security token
}

// Submission is the trimmed, immutable capture of a contact request.
// All pipeline checks are pure functions over it.
type Submission struct {
	Name          string
	Email         string
	ProjectType   string
	ProjectBudget string
	Vision        string

	// Honeypot field name -> submitted value (trimmed)
	Honeypots map[string]string

	// FormTimestampMs is the client-reported form-load instant in epoch ms,
	// zero when absent or unparseable.
	FormTimestampMs int64

	FormToken string
}

// Response types

type ContactSuccessResponse struct {
	Message string `json:"message"`
}

type FormMetaResponse struct {
	FormTimestamp int64  `json:"formTimestamp"`
	FormToken     string `json:"formToken"`
}

type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Count int    `json:"count"`
}

// ErrorResponse is the error body for every endpoint. FieldErrors is set
// only for validation rejections.
type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// SubmissionOutcome is the terminal result of the submission pipeline.
// FieldErrors is non-nil iff Status is StatusRejectedValidation.
type SubmissionOutcome struct {
	Status      string
	Message     string
	FieldErrors map[string]string
}

// Accepted reports whether the submission made it through the pipeline.
func (o SubmissionOutcome) Accepted() bool {
	return o.Status == StatusAccepted
}

// Domain types

// Lead is an archived accepted submission.
type Lead struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ProjectType   string    `json:"project_type"`
	ProjectBudget string    `json:"project_budget"`
	Vision        string    `json:"vision"`
	IPHash        string    `json:"-"` // Never expose in JSON
	UserAgent     string    `json:"-"` // Never expose in JSON
	CreatedAt     time.Time `json:"created_at"`
}

// PortfolioProject is a front-matter-annotated portfolio entry.
type PortfolioProject struct {
	Title       string   `json:"title" yaml:"title"`
	Client      string   `json:"client" yaml:"client"`
	Category    string   `json:"category" yaml:"category"`
	Year        string   `json:"year" yaml:"year"`
	Duration    string   `json:"duration" yaml:"duration"`
	Budget      string   `json:"budget" yaml:"budget"`
	Location    string   `json:"location" yaml:"location"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Video       string   `json:"video" yaml:"video"`
	Tags        []string `json:"tags" yaml:"tags"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Slug        string   `json:"slug" yaml:"-"`
	Content     string   `json:"content" yaml:"-"`
}

// Testimonial is a front-matter-annotated client testimonial.
type Testimonial struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Company  string `json:"company" yaml:"company"`
	Project  string `json:"project" yaml:"project"`
	Rating   int    `json:"rating" yaml:"rating"`
	Featured bool   `json:"featured" yaml:"featured"`
	Image    string `json:"image" yaml:"image"`
	Slug     string `json:"slug" yaml:"-"`
	Content  string `json:"content" yaml:"-"`
}
