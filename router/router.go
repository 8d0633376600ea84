// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/southwest-video/cliparse"
	"github.com/danielhkuo/southwest-video/contact"
	"github.com/danielhkuo/southwest-video/content"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/handlers"
	"github.com/danielhkuo/southwest-video/middleware"
)

// NewRouter wires every endpoint. contentStore and leadStore may be nil
// when the corresponding feature is not configured.
func NewRouter(pipeline *contact.Pipeline, contentStore *content.Store, leadStore db.LeadStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(pipeline, cfg)
	leadHandler := handlers.NewLeadHandler(leadStore, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Lead submission (public)
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.Submit))
	mux.HandleFunc("GET /api/contact/form-meta", middleware.WithLogging(contactHandler.FormMeta))

	// Site content (public, read-only)
	if contentStore != nil {
		contentHandler := handlers.NewContentHandler(contentStore)
		mux.HandleFunc("GET /api/portfolio", middleware.WithLogging(contentHandler.ListProjects))
		mux.HandleFunc("GET /api/portfolio/categories", middleware.WithLogging(contentHandler.ListCategories))
		mux.HandleFunc("GET /api/portfolio/tags", middleware.WithLogging(contentHandler.ListTags))
		mux.HandleFunc("GET /api/portfolio/{slug}", middleware.WithLogging(contentHandler.GetProject))
		mux.HandleFunc("GET /api/testimonials", middleware.WithLogging(contentHandler.ListTestimonials))
		mux.HandleFunc("GET /api/testimonials/{slug}", middleware.WithLogging(contentHandler.GetTestimonial))
	}

	// Lead archive (admin, requires X-Admin-Key)
	mux.HandleFunc("GET /api/leads", middleware.WithLogging(leadHandler.List))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("southwest-video API v1"))
	})

	return mux
}
