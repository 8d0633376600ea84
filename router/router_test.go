// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/southwest-video/content"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/testutil"
)

func setupMux(t *testing.T) *http.ServeMux {
	t.Helper()

	dir := t.TempDir()
	for _, sub := range []string{"portfolio", "testimonials"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("Failed to create content dir: %v", err)
		}
	}
	store, err := content.Load(dir)
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}

	cfg := testutil.GetTestConfig()
	tp := testutil.NewTestPipeline(cfg)
	return NewRouter(tp.Pipeline, store, db.NewMemoryLeadStore(), cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := setupMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "southwest-video API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := setupMux(t)

	// Routes should be matched; 400/401/404 from handler logic is fine,
	// 405 means the route was never registered
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/api/contact"},
		{"GET", "/api/contact/form-meta"},

		{"GET", "/api/portfolio"},
		{"GET", "/api/portfolio/categories"},
		{"GET", "/api/portfolio/tags"},
		{"GET", "/api/portfolio/some-slug"},
		{"GET", "/api/testimonials"},
		{"GET", "/api/testimonials/some-slug"},

		{"GET", "/api/leads"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupMux(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},          // Only GET is defined
		{"GET", "/api/contact"},      // Only POST is defined
		{"DELETE", "/api/portfolio"}, // Only GET is defined
		{"POST", "/api/leads"},       // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestContentRoutesAbsentWithoutStore(t *testing.T) {
	cfg := testutil.GetTestConfig()
	tp := testutil.NewTestPipeline(cfg)
	mux := NewRouter(tp.Pipeline, nil, nil, cfg)

	req := httptest.NewRequest("GET", "/api/portfolio", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	// Falls through to the GET / catch-all rather than a content handler
	if w.Body.String() != "southwest-video API v1" {
		t.Errorf("Expected catch-all response without a content store, got %q", w.Body.String())
	}
}

func TestLiteralContentRoutesWinOverSlug(t *testing.T) {
	mux := setupMux(t)

	req := httptest.NewRequest("GET", "/api/portfolio/categories", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	// Must hit the categories handler, not the {slug} lookup
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from categories route, got %d. Body: %s", w.Code, w.Body.String())
	}
}
