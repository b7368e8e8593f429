// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for skill manifests.
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
)

// nameRE matches valid skill names: lowercase alphanumerics and hyphens,
// no leading or trailing hyphen.
var nameRE = regexp.MustCompile(`^[a-z0-9]$|^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// Kind identifies which validation rule a manifest violated.
type Kind string

// Validation error kinds. One per rule; each maps to exactly one field.
const (
	MissingName        Kind = "missing_name"
	InvalidNameFormat  Kind = "invalid_name_format"
	DoubledHyphen      Kind = "doubled_hyphen"
	NameTooLong        Kind = "name_too_long"
	MissingDescription Kind = "missing_description"
	DescriptionTooLong Kind = "description_too_long"
)

// ValidationError describes a single violated manifest rule.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a manifest against the skill naming and length rules.
// Fields are checked independently; within a field the first violated rule
// wins. An empty slice means the manifest is acceptable.
func Validate(m *Manifest) []ValidationError {
	var errs []ValidationError

	if err := validateName(m.Name); err != nil {
		errs = append(errs, *err)
	}
	if err := validateDescription(m.Description); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

func validateName(name string) *ValidationError {
	switch {
	case name == "":
		return &ValidationError{Kind: MissingName, Field: "name", Message: "missing 'name'"}
	case !nameRE.MatchString(name):
		return &ValidationError{
			Kind:    InvalidNameFormat,
			Field:   "name",
			Message: fmt.Sprintf("invalid name format: %q", name),
		}
	case strings.Contains(name, "--"):
		return &ValidationError{
			Kind:    DoubledHyphen,
			Field:   "name",
			Message: fmt.Sprintf("consecutive hyphens in name: %q", name),
		}
	case len(name) > MaxNameLength:
		return &ValidationError{
			Kind:    NameTooLong,
			Field:   "name",
			Message: fmt.Sprintf("name exceeds %d characters", MaxNameLength),
		}
	}
	return nil
}

func validateDescription(desc string) *ValidationError {
	switch {
	case strings.TrimSpace(desc) == "":
		return &ValidationError{Kind: MissingDescription, Field: "description", Message: "missing 'description'"}
	// Limits count characters, not bytes, so multibyte text is not
	// penalized for its encoding.
	case utf8.RuneCountInString(desc) > MaxDescriptionLength:
		return &ValidationError{
			Kind:    DescriptionTooLong,
			Field:   "description",
			Message: fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength),
		}
	}
	return nil
}
