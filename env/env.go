// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// GitHubToken returns the optional bearer token used for GitHub API calls.
// An empty string means unauthenticated access.
func GitHubToken(r Reader) string {
	return r.Getenv("GITHUB_TOKEN")
}

// Actor returns the identity recorded as the creator of a proxy skill,
// falling back to "unknown" when USER is not set.
func Actor(r Reader) string {
	if user := r.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}
