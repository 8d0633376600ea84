// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/southwest-video/content"
	"github.com/danielhkuo/southwest-video/middleware"
	"github.com/danielhkuo/southwest-video/models"
)

type ContentHandler struct {
	store *content.Store
}

func NewContentHandler(store *content.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

// ListProjects handles GET /api/portfolio.
// Supports ?featured=true and ?category= filters.
func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.PortfolioProject
	switch {
	case r.URL.Query().Get("featured") == "true":
		projects = h.store.FeaturedProjects()
	case r.URL.Query().Get("category") != "":
		projects = h.store.ProjectsByCategory(r.URL.Query().Get("category"))
	default:
		projects = h.store.Projects()
	}

	if projects == nil {
		projects = []models.PortfolioProject{}
	}
	middleware.JSONResponse(w, http.StatusOK, projects)
}

// GetProject handles GET /api/portfolio/{slug}
func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.store.ProjectBySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, project)
}

// ListCategories handles GET /api/portfolio/categories
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.store.Categories()
	if categories == nil {
		categories = []string{}
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// ListTags handles GET /api/portfolio/tags
func (h *ContentHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags := h.store.Tags()
	if tags == nil {
		tags = []string{}
	}
	middleware.JSONResponse(w, http.StatusOK, tags)
}

// ListTestimonials handles GET /api/testimonials.
// Supports ?featured=true.
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	var testimonials []models.Testimonial
	if r.URL.Query().Get("featured") == "true" {
		testimonials = h.store.FeaturedTestimonials()
	} else {
		testimonials = h.store.Testimonials()
	}

	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	middleware.JSONResponse(w, http.StatusOK, testimonials)
}

// GetTestimonial handles GET /api/testimonials/{slug}
func (h *ContentHandler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonial, ok := h.store.TestimonialBySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Testimonial not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, testimonial)
}
