// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for values that end up in
// outbound HTTP requests: bearer tokens and API base URLs.
package http

import (
	"fmt"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// maxTokenLength bounds accepted token sizes. GitHub tokens are well
// under this; anything larger is malformed input.
const maxTokenLength = 512

// ValidateBearerToken validates that a token can be sent as an
// Authorization header value without header injection. It checks for
// CRLF and control characters using the same rules as Go's HTTP/2
// implementation.
func ValidateBearerToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if len(token) > maxTokenLength {
		return fmt.Errorf("token exceeds maximum length of %d bytes", maxTokenLength)
	}

	if !httpguts.ValidHeaderFieldValue("Bearer " + token) {
		return fmt.Errorf("token contains characters not allowed in an HTTP header value")
	}

	return nil
}

// ValidateBaseURL validates that a string is usable as an API base URL.
//
// A valid base URL must:
//   - Include an http or https scheme
//   - Include a host
//   - Not contain a query string or fragment
func ValidateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https: %s", baseURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("base URL must include a host: %s", baseURL)
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("base URL must not contain a query string or fragment: %s", baseURL)
	}

	return nil
}
