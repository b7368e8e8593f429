// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

The package also exposes the two process-level values skillproxy reads at
startup: the optional GitHub bearer token and the acting user identity:

	token := env.GitHubToken(reader)
	actor := env.Actor(reader)

# Testing

The Reader interface allows injecting a fake in tests to avoid relying on
real environment variables. A map-backed Reader suffices:

	type mapReader map[string]string

	func (m mapReader) Getenv(key string) string { return m[key] }

# Design

Production code accepts an env.Reader; tests substitute a fake. The token
is read once at startup and treated as immutable for the process lifetime.
*/
package env
