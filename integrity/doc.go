// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package integrity computes and compares content checksums for pinned skill
snapshots.

Checksums are taken over the exact fetched byte sequence, never a re-encoded
or normalized form, so any single-byte change upstream is detected. This
makes the check a strict superset of any structural comparison: whitespace,
encoding, or key-ordering changes that a semantic diff might ignore still
alter the digest.

The package also declares the two collaborator interfaces the lifecycle
operations depend on (raw content fetching and branch resolution), with
generated mocks for testing.
*/
package integrity
