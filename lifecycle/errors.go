// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"strings"

	"github.com/stacklok/skillproxy/frontmatter"
)

// ValidationFailedError reports a remote skill that must not be proxied.
// It is returned before any write occurs, so an existing record is always
// left exactly as it was.
type ValidationFailedError struct {
	// Violations are the rule violations found in the remote manifest.
	// Empty when the remote document is structurally malformed.
	Violations []frontmatter.ValidationError

	// cause is the structural parse failure, when there is one.
	cause error
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	if e.cause != nil {
		return "remote skill is malformed: " + e.cause.Error()
	}

	msgs := make([]string, 0, len(e.Violations))
	for i := range e.Violations {
		msgs = append(msgs, e.Violations[i].Error())
	}
	return "remote skill failed validation: " + strings.Join(msgs, "; ")
}

// Unwrap returns the structural cause, if any.
func (e *ValidationFailedError) Unwrap() error {
	return e.cause
}

// validateRemote parses and validates fetched remote skill content.
// Any failure, structural or rule-based, is a ValidationFailedError.
func validateRemote(content []byte) (*frontmatter.Manifest, []byte, error) {
	manifest, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, nil, &ValidationFailedError{cause: err}
	}
	if violations := frontmatter.Validate(manifest); len(violations) > 0 {
		return nil, nil, &ValidationFailedError{Violations: violations}
	}
	return manifest, body, nil
}
