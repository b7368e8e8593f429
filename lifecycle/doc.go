// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package lifecycle drives the three operations on a proxy skill record:
create, verify, and update.

Create resolves a source URL, fetches and validates the remote skill, pins
it to the current branch tip commit, and writes the proxy record. Verify
re-fetches the pinned address and compares checksums without ever writing.
Update re-resolves the tracked branch and re-pins only when the tip moved,
gated by the same validation as create; when the tip is unchanged it is a
no-op.

Each operation is a short-lived synchronous sequence: one or two remote
calls, then at most one filesystem write. Failure classes stay distinct so
callers can branch on them: bad input (usage), remote failures, validation
failures (which always abort before the write), and integrity mismatches
(which signal drift on a contractually immutable address).

The remote host is reached only through the integrity collaborator
interfaces, so all three operations are testable with mocks and no
network.
*/
package lifecycle
