// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/southwest-video/cliparse"
	"github.com/danielhkuo/southwest-video/contact"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/mailer"
	"github.com/danielhkuo/southwest-video/models"
	"github.com/danielhkuo/southwest-video/ratelimit"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             4150,
		EmailFrom:        "Leads <test@example.com>",
		EmailTo:          "studio@example.com",
		FormTokenSalt:    "test-form-salt",
		AdminKeySalt:     "test-admin-salt",
		IPHashSalt:       "test-ip-salt",
		RateLimit:        5,
		RateLimitUnknown: 10,
		RateLimitWindow:  time.Minute,
	}
}

// TestPipeline bundles a pipeline with its fakes so tests can inspect
// dispatched mail and archived leads.
type TestPipeline struct {
	Pipeline *contact.Pipeline
	Mailer   *mailer.Mock
	Leads    *db.MemoryLeadStore
}

// NewTestPipeline builds a pipeline on a mock mailer and an in-memory
// lead store, using the standard test config.
func NewTestPipeline(cfg cliparse.Config) *TestPipeline {
	mock := mailer.NewMock()
	leads := db.NewMemoryLeadStore()
	pipeline := contact.New(contact.Config{
		EmailFrom:        cfg.EmailFrom,
		EmailTo:          cfg.EmailTo,
		RateLimit:        cfg.RateLimit,
		RateLimitUnknown: cfg.RateLimitUnknown,
		RateLimitWindow:  cfg.RateLimitWindow,
		FormTokenSalt:    cfg.FormTokenSalt,
		IPHashSalt:       cfg.IPHashSalt,
	}, ratelimit.New(nil, nil), mock, leads, nil)
	return &TestPipeline{Pipeline: pipeline, Mailer: mock, Leads: leads}
}

// ValidContactRequest returns a submission that passes every pipeline
// stage: real fields, empty honeypots, and a form timestamp old enough
// to clear the timing heuristic.
func ValidContactRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:          "Jordan Ellis",
		Email:         "jordan@example.com",
		ProjectType:   "Corporate Film",
		ProjectBudget: "£2k - £5k",
		Vision:        "A short brand film for our product launch in autumn.",
		FormTimestamp: strconv.FormatInt(time.Now().Add(-10*time.Second).UnixMilli(), 10),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
