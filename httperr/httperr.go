// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types carrying HTTP status codes from remote responses.
package httperr

import (
	"errors"
	"net/http"
)

// CodedError wraps an error with the HTTP status code of the remote response
// that caused it. This lets the status travel through the call stack so
// callers can classify remote failures without re-parsing error strings.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for a CodedError.
// If no CodedError is found, it returns 0 (no remote response involved).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return 0
}

// IsStatus reports whether the error chain carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var coded *CodedError
	return errors.As(err, &coded) && coded.code == code
}
