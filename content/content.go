// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/southwest-video/models"
)

var frontMatterDelimiter = []byte("---")

// Store holds all site content in memory, loaded once at startup.
type Store struct {
	projects     []models.PortfolioProject
	testimonials []models.Testimonial
}

// Load reads every markdown document under dir/portfolio and
// dir/testimonials, parses the YAML front matter, and returns a sorted
// Store. Missing subdirectories yield empty collections, not errors.
func Load(dir string) (*Store, error) {
	s := &Store{}

	if err := loadDocuments(filepath.Join(dir, "portfolio"), func(slug, body string, front []byte) error {
		var p models.PortfolioProject
		if err := yaml.Unmarshal(front, &p); err != nil {
			return err
		}
		p.Slug = slug
		p.Content = body
		s.projects = append(s.projects, p)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDocuments(filepath.Join(dir, "testimonials"), func(slug, body string, front []byte) error {
		var tm models.Testimonial
		if err := yaml.Unmarshal(front, &tm); err != nil {
			return err
		}
		tm.Slug = slug
		tm.Content = body
		s.testimonials = append(s.testimonials, tm)
		return nil
	}); err != nil {
		return nil, err
	}

	// Featured entries first, then year (newest first)
	sort.SliceStable(s.projects, func(i, j int) bool {
		a, b := s.projects[i], s.projects[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		return yearValue(a.Year) > yearValue(b.Year)
	})

	// Featured entries first, then rating (highest first)
	sort.SliceStable(s.testimonials, func(i, j int) bool {
		a, b := s.testimonials[i], s.testimonials[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		return a.Rating > b.Rating
	})

	return s, nil
}

// loadDocuments feeds each parsed document in dir to visit. The slug is the
// filename without its extension.
func loadDocuments(dir string, visit func(slug, body string, front []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read content dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		front, body, err := splitFrontMatter(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		slug := strings.TrimSuffix(name, ".md")
		if err := visit(slug, body, front); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// splitFrontMatter separates the YAML block between two --- delimiter lines
// from the markdown body.
func splitFrontMatter(raw []byte) (front []byte, body string, err error) {
	trimmed := bytes.TrimLeft(raw, "\r\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelimiter) {
		// No front matter at all: the whole document is body
		return nil, string(raw), nil
	}

	rest := trimmed[len(frontMatterDelimiter):]
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))

	idx := bytes.Index(rest, append([]byte("\n"), frontMatterDelimiter...))
	if idx < 0 {
		return nil, "", fmt.Errorf("unterminated front matter")
	}

	front = rest[:idx]
	after := rest[idx+1+len(frontMatterDelimiter):]
	after = bytes.TrimLeft(after, "\r\n")
	return front, string(after), nil
}

func yearValue(year string) int {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0
	}
	return n
}

// Projects returns all portfolio projects, featured first then newest.
func (s *Store) Projects() []models.PortfolioProject {
	return s.projects
}

// FeaturedProjects returns only featured portfolio projects.
func (s *Store) FeaturedProjects() []models.PortfolioProject {
	var out []models.PortfolioProject
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ProjectBySlug returns the project with the given slug, or false.
func (s *Store) ProjectBySlug(slug string) (models.PortfolioProject, bool) {
	for _, p := range s.projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.PortfolioProject{}, false
}

// ProjectsByCategory returns projects matching category, case-insensitively.
func (s *Store) ProjectsByCategory(category string) []models.PortfolioProject {
	var out []models.PortfolioProject
	for _, p := range s.projects {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the sorted set of project categories.
func (s *Store) Categories() []string {
	return collectUnique(s.projects, func(p models.PortfolioProject) []string {
		return []string{p.Category}
	})
}

// Tags returns the sorted set of tags across all projects.
func (s *Store) Tags() []string {
	return collectUnique(s.projects, func(p models.PortfolioProject) []string {
		return p.Tags
	})
}

// Testimonials returns all testimonials, featured first then highest rated.
func (s *Store) Testimonials() []models.Testimonial {
	return s.testimonials
}

// FeaturedTestimonials returns only featured testimonials.
func (s *Store) FeaturedTestimonials() []models.Testimonial {
	var out []models.Testimonial
	for _, tm := range s.testimonials {
		if tm.Featured {
			out = append(out, tm)
		}
	}
	return out
}

// TestimonialBySlug returns the testimonial with the given slug, or false.
func (s *Store) TestimonialBySlug(slug string) (models.Testimonial, bool) {
	for _, tm := range s.testimonials {
		if tm.Slug == slug {
			return tm, true
		}
	}
	return models.Testimonial{}, false
}

func collectUnique(projects []models.PortfolioProject, pick func(models.PortfolioProject) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		for _, v := range pick(p) {
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}
