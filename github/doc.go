// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package github implements the remote host collaborator for skillproxy.

The lifecycle operations need exactly two remote capabilities: fetching the
raw bytes at a content address, and resolving a branch name to the commit
SHA at its tip. Client provides both against raw.githubusercontent.com and
api.github.com.

An optional bearer token (GITHUB_TOKEN) authenticates API calls; raw
content fetches are always unauthenticated. Base URLs are injectable so
tests can point the client at an httptest server.

Failed responses are wrapped with httperr so callers can classify a missing
resource (ErrNotFound, 404) separately from transport and server failures
(ErrRemoteUnavailable).
*/
package github
