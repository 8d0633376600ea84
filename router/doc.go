// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Southwest Video API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(pipeline, contentStore, leadStore, cfg)

# Endpoints

Health:

	GET /health

Lead submission (public):

	POST /api/contact           - Run the submission pipeline
	GET  /api/contact/form-meta - Issue form timestamp + signed token

Site content (public, registered only when a content store is loaded):

	GET /api/portfolio             - All projects (?featured=true, ?category=)
	GET /api/portfolio/categories  - Distinct categories
	GET /api/portfolio/tags        - Distinct tags
	GET /api/portfolio/{slug}      - One project
	GET /api/testimonials          - All testimonials (?featured=true)
	GET /api/testimonials/{slug}   - One testimonial

Lead archive (admin, requires X-Admin-Key):

	GET /api/leads - Archived accepted leads, newest first

# Handler Initialization

The router creates handler instances with dependency injection:

	contactHandler := handlers.NewContactHandler(pipeline, cfg)
	contentHandler := handlers.NewContentHandler(contentStore)
	leadHandler := handlers.NewLeadHandler(leadStore, cfg)
*/
package router
