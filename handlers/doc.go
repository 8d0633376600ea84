// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Southwest Video API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ContactHandler: lead submission and form metadata
  - ContentHandler: portfolio projects and testimonials
  - LeadHandler: admin access to the lead archive

	contactHandler := handlers.NewContactHandler(pipeline, cfg)
	contentHandler := handlers.NewContentHandler(store)
	leadHandler := handlers.NewLeadHandler(leadStore, cfg)

# Contact Flow

The contact endpoint accepts JSON or form-encoded bodies and runs the
submission pipeline:

	POST /api/contact          → Submit (200/400/429/500)
	GET  /api/contact/form-meta → FormMeta (timestamp + signed token)

Responses follow one contract: {"message"} on success, {"error"} with an
optional {"fieldErrors"} map on failure. Bot rejections and dispatch
failures are deliberately generic.

# Content Flow

Read-only JSON views over the front-matter content store:

	GET /api/portfolio                → ListProjects (?featured=true, ?category=)
	GET /api/portfolio/{slug}         → GetProject
	GET /api/portfolio/categories     → ListCategories
	GET /api/portfolio/tags           → ListTags
	GET /api/testimonials             → ListTestimonials (?featured=true)
	GET /api/testimonials/{slug}      → GetTestimonial

# Lead Archive

	GET /api/leads → List (newest first, ?limit= ?offset=)

Requires the X-Admin-Key header; the key is the HMAC of
auth.LeadArchiveKeyID under ADMIN_KEY_SALT (see -print-admin-key).
*/
package handlers
