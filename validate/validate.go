// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/danielhkuo/southwest-video/models"
)

// Field length limits
const (
	NameMinLength   = 2
	NameMaxLength   = 100
	EmailMaxLength  = 254
	VisionMinLength = 10
	VisionMaxLength = 2000
)

var (
	// Letters, spaces, hyphens, apostrophes, and periods only
	namePattern = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)

	// Structural check only: local@domain with a dot, no whitespace
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Fields validates a trimmed submission and returns a field -> message map
// of every violation found, or nil when all fields pass. Deterministic:
// the same submission always yields the same result.
func Fields(s models.Submission) map[string]string {
	errs := make(map[string]string)

	switch nameLen := utf8.RuneCountInString(s.Name); {
	case s.Name == "":
		errs["name"] = "Name is required."
	case nameLen < NameMinLength:
		errs["name"] = fmt.Sprintf("Name must be at least %d characters long.", NameMinLength)
	case nameLen > NameMaxLength:
		errs["name"] = fmt.Sprintf("Name must be less than %d characters.", NameMaxLength)
	case !namePattern.MatchString(s.Name):
		errs["name"] = "Name can only contain letters, spaces, hyphens, apostrophes, and periods."
	}

	switch {
	case s.Email == "":
		errs["email"] = "Email address is required."
	case utf8.RuneCountInString(s.Email) > EmailMaxLength:
		errs["email"] = "Email address is too long."
	case !emailPattern.MatchString(s.Email):
		errs["email"] = "Please enter a valid email address."
	}

	switch {
	case s.ProjectType == "":
		errs["projectType"] = "Please select a project type."
	case !slices.Contains(models.ProjectTypes, s.ProjectType):
		errs["projectType"] = "Please select a project type from the list."
	}

	switch {
	case s.ProjectBudget == "":
		errs["projectBudget"] = "Please select a budget range."
	case !slices.Contains(models.BudgetRanges, s.ProjectBudget):
		errs["projectBudget"] = "Please select a budget range from the list."
	}

	switch visionLen := utf8.RuneCountInString(s.Vision); {
	case s.Vision == "":
		errs["vision"] = "Project vision is required."
	case visionLen < VisionMinLength:
		errs["vision"] = fmt.Sprintf("Please provide at least %d characters describing your vision.", VisionMinLength)
	case visionLen > VisionMaxLength:
		errs["vision"] = fmt.Sprintf("Project vision must be less than %d characters.", VisionMaxLength)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
