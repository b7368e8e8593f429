// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package proxy builds and persists proxy skill records.

A proxy skill is a local SKILL.md that stands in for a remote one. Its
frontmatter describes the proxy itself and carries the pinned snapshot in
the metadata map (source URL, pinned raw URL, commit SHA, content SHA-256,
tracked branch, and provenance). Its body contains a liability disclaimer
and the verify-before-use procedure that makes the pin enforceable: any
consumer must re-fetch the pinned address, recompute the digest, and
compare before following the remote instructions.

Records are written atomically (temp file plus rename) under a directory
named after the proxy, and validated against an embedded JSON schema after
generation.
*/
package proxy
