// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/southwest-video/content"
	"github.com/danielhkuo/southwest-video/models"
	"github.com/danielhkuo/southwest-video/testutil"
)

func setupContentStore(t *testing.T) *content.Store {
	t.Helper()

	dir := t.TempDir()
	for _, sub := range []string{"portfolio", "testimonials"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("Failed to create content dir: %v", err)
		}
	}

	writeFile := func(rel, body string) {
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(body), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}

	writeFile("portfolio/brand-film.md", `---
title: Brand Film
client: Acme
category: Corporate
year: "2024"
tags: [corporate, launch]
featured: true
---
A launch film.
`)
	writeFile("portfolio/wedding-highlights.md", `---
title: Wedding Highlights
client: Private
category: Wedding
year: "2023"
tags: [wedding]
featured: false
---
A highlight reel.
`)
	writeFile("testimonials/acme.md", `---
name: Robin Hale
company: Acme
rating: 5
featured: true
---
Wonderful to work with.
`)

	store, err := content.Load(dir)
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}
	return store
}

func TestListProjects(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{"all projects", "/api/portfolio", 2},
		{"featured only", "/api/portfolio?featured=true", 1},
		{"by category", "/api/portfolio?category=wedding", 1},
		{"unknown category", "/api/portfolio?category=nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.path, nil, nil)
			w := httptest.NewRecorder()
			handler.ListProjects(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var projects []models.PortfolioProject
			testutil.AssertJSON(t, w, &projects)
			if len(projects) != tt.wantCount {
				t.Errorf("Expected %d projects, got %d", tt.wantCount, len(projects))
			}
		})
	}
}

func TestListProjectsFeaturedFirst(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	req := testutil.MakeRequest("GET", "/api/portfolio", nil, nil)
	w := httptest.NewRecorder()
	handler.ListProjects(w, req)

	var projects []models.PortfolioProject
	testutil.AssertJSON(t, w, &projects)
	if len(projects) == 0 || !projects[0].Featured {
		t.Error("Expected the featured project first")
	}
}

func TestGetProject(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	req := testutil.MakeRequest("GET", "/api/portfolio/brand-film", nil, nil)
	req.SetPathValue("slug", "brand-film")
	w := httptest.NewRecorder()
	handler.GetProject(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var project models.PortfolioProject
	testutil.AssertJSON(t, w, &project)
	if project.Title != "Brand Film" {
		t.Errorf("Expected Brand Film, got %q", project.Title)
	}
	if project.Slug != "brand-film" {
		t.Errorf("Expected slug from filename, got %q", project.Slug)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	req := testutil.MakeRequest("GET", "/api/portfolio/missing", nil, nil)
	req.SetPathValue("slug", "missing")
	w := httptest.NewRecorder()
	handler.GetProject(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListCategoriesAndTags(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	w := httptest.NewRecorder()
	handler.ListCategories(w, testutil.MakeRequest("GET", "/api/portfolio/categories", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var categories []string
	testutil.AssertJSON(t, w, &categories)
	if len(categories) != 2 {
		t.Errorf("Expected 2 categories, got %v", categories)
	}

	w = httptest.NewRecorder()
	handler.ListTags(w, testutil.MakeRequest("GET", "/api/portfolio/tags", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var tags []string
	testutil.AssertJSON(t, w, &tags)
	if len(tags) != 3 {
		t.Errorf("Expected 3 tags, got %v", tags)
	}
}

func TestListTestimonials(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	req := testutil.MakeRequest("GET", "/api/testimonials", nil, nil)
	w := httptest.NewRecorder()
	handler.ListTestimonials(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var testimonials []models.Testimonial
	testutil.AssertJSON(t, w, &testimonials)
	if len(testimonials) != 1 {
		t.Errorf("Expected 1 testimonial, got %d", len(testimonials))
	}
	if testimonials[0].Name != "Robin Hale" {
		t.Errorf("Unexpected testimonial: %+v", testimonials[0])
	}
}

func TestGetTestimonial(t *testing.T) {
	handler := NewContentHandler(setupContentStore(t))

	req := testutil.MakeRequest("GET", "/api/testimonials/acme", nil, nil)
	req.SetPathValue("slug", "acme")
	w := httptest.NewRecorder()
	handler.GetTestimonial(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var testimonial models.Testimonial
	testutil.AssertJSON(t, w, &testimonial)
	if testimonial.Rating != 5 {
		t.Errorf("Expected rating 5, got %d", testimonial.Rating)
	}
}
