// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package content loads front-matter-annotated site documents.

# Layout

The content directory holds markdown files with a YAML front-matter block:

	content/
		portfolio/
			corporate-launch.md
			summer-wedding.md
		testimonials/
			jane-doe.md

Each document is:

	---
	title: Corporate Launch Film
	category: Corporate
	year: "2025"
	featured: true
	tags: [corporate, launch]
	---
	Markdown body...

The slug is the filename without extension.

# Loading and Ordering

Load reads everything once at startup and returns an in-memory Store.
Portfolio projects sort featured-first then year descending; testimonials
sort featured-first then rating descending.

# Queries

	store.Projects()
	store.FeaturedProjects()
	store.ProjectBySlug("corporate-launch")
	store.ProjectsByCategory("Corporate")
	store.Categories()
	store.Tags()
	store.Testimonials()
	store.FeaturedTestimonials()
	store.TestimonialBySlug("jane-doe")

The submission pipeline does not depend on this package; it exists to back
the read-only content endpoints.
*/
package content
